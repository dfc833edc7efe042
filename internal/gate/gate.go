// Package gate derives, from an order's raw checking status and the
// catalog's limit signals, whether a new submission is currently permitted.
package gate

import (
	"fmt"
	"strings"

	"github.com/grupoom/checking-central/internal/model"
)

// ParseStatus classifies the raw status string against the fixed vocabulary.
// Matching is case-insensitive and trimmed. Empty, "null" and "não recebido"
// mean no checking is on file yet; everything else non-empty is a terminal
// state, Unknown when outside the vocabulary.
func ParseStatus(raw string) model.ProcessingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "null", "não recebido":
		return model.StatusNotReceived
	case "ok":
		return model.StatusConfirmed
	case "falha":
		return model.StatusRejected
	case "com problema", "complemento":
		return model.StatusArchived
	default:
		return model.StatusUnknown
	}
}

// Decide computes the gate decision for one order, from its raw status
// string and the collaborator's limit and complement signals.
//
// The gate fails closed: any status it does not recognize blocks submission.
// An archived "complemento" status blocks even when the complement signal is
// set — the complement flag only survives on an open order. When the limit
// signal blocks, the catalog's own status note is surfaced if it sent one.
func Decide(order model.OrderRecord) model.GateDecision {
	status := ParseStatus(order.CheckingStatus)

	if !status.IsOpen() {
		switch status {
		case model.StatusConfirmed:
			return blocked(status, model.ReasonConfirmed, "PI com Checking Confirmado. (Envio Bloqueado)")
		case model.StatusRejected:
			return blocked(status, model.ReasonRejected, "PI com Checking Recusado. (Envio Bloqueado)")
		case model.StatusArchived:
			return blocked(status, model.ReasonArchived, "PI com Checking Arquivado. (Envio Bloqueado)")
		default:
			msg := fmt.Sprintf("PI Finalizada (%s). Envio bloqueado.", strings.TrimSpace(order.CheckingStatus))
			return blocked(status, model.ReasonFinalized, msg)
		}
	}

	// Status is open; the limit signal can still force a block.
	if order.LimitReached() {
		msg := strings.TrimSpace(order.StatusNote)
		if msg == "" {
			msg = "Limite de envios atingido. (Envio Bloqueado)"
		}
		return blocked(status, model.ReasonLimit, msg)
	}

	msg := "PI Disponível para envio."
	if order.IsComplement {
		msg = "PI Disponível para envio de complemento."
	}
	return model.GateDecision{
		Allowed:      true,
		IsComplement: order.IsComplement,
		Status:       status,
		Reason:       model.ReasonOpen,
		Message:      msg,
	}
}

func blocked(status model.ProcessingStatus, reason model.ReasonCode, message string) model.GateDecision {
	return model.GateDecision{
		Allowed: false,
		Status:  status,
		Reason:  reason,
		Message: message,
	}
}
