package flow

import (
	"context"
	"fmt"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/order"
	"github.com/artdecor-nn/order-bot/internal/infra/metrics"
)

// finalize рассылает готовую заявку: менеджерам региона (или только
// выбранному), затем админам со списком ошибок доставки, затем
// клиенту подтверждение без служебных деталей. Отказ одного
// получателя не прерывает остальных.
func (e *Engine) finalize(ctx context.Context, s *Session) {
	summary := order.ManagerSummary(s.Order)

	region := ""
	if s.Order.Client.Region != nil {
		region = *s.Order.Client.Region
	}
	var contacts []directory.Contact
	if s.Directory != nil {
		contacts = s.Directory.Contacts(region)
	}

	targets := contacts
	if s.Order.Client.ManagerChatID != nil || s.Order.Client.ManagerEmail != nil {
		targets = nil
		for _, c := range contacts {
			if matchesSelected(s.Order.Client, c) {
				targets = append(targets, c)
			}
		}
	}

	var failures []string
	for _, c := range targets {
		if err := e.deliverer.Deliver(ctx, c, summary, s.Order.Comment.Attachments); err != nil {
			e.log.Error("deliver to manager failed",
				"intake_id", s.IntakeID, "recipient", c.Ident(), "err", err)
			failures = append(failures, failureLine(c, err))
			metrics.ManagerDeliveries.WithLabelValues("error").Inc()
			continue
		}
		metrics.ManagerDeliveries.WithLabelValues("ok").Inc()
	}

	adminSummary := summary
	if len(failures) > 0 {
		adminSummary += "\n\n⚠️ ОШИБКИ ПРИ ОТПРАВКЕ МЕНЕДЖЕРАМ:\n"
		for _, f := range failures {
			adminSummary += "• " + f + "\n"
		}
	} else if len(contacts) == 0 {
		adminSummary += "\n\n⚠️ Менеджеры по региону не найдены."
	}

	if e.forwardToAdmins {
		if len(e.adminIDs) == 0 {
			e.log.Warn("forward to admins enabled but admin list is empty")
		}
		for _, adminID := range e.adminIDs {
			if err := e.transport.SendText(ctx, adminID, adminSummary); err != nil {
				e.log.Error("notify admin failed", "admin_id", adminID, "err", err)
				metrics.AdminNotifications.WithLabelValues("error").Inc()
				continue
			}
			metrics.AdminNotifications.WithLabelValues("ok").Inc()
		}
	}

	confirmation := "Спасибо за вашу заявку!\n\nВаша заявка:\n" +
		order.ClientSummary(s.Order) +
		"\n\nМы свяжемся с вами в ближайшее время."

	e.sessions.Reset(s.ChatID)
	if err := e.transport.SendText(ctx, s.ChatID, confirmation); err != nil {
		e.log.Error("send confirmation failed", "chat_id", s.ChatID, "err", err)
	}

	metrics.IntakesCompleted.Inc()
	e.log.Info("intake completed",
		"chat_id", s.ChatID, "intake_id", s.IntakeID,
		"recipients", len(targets), "failed", len(failures))
}

// matchesSelected: выбранный менеджер сравнивается по chat_id, для
// почтовых контактов по адресу.
func matchesSelected(cl order.Client, c directory.Contact) bool {
	if cl.ManagerChatID != nil {
		return c.ChatID == *cl.ManagerChatID
	}
	return cl.ManagerEmail != nil && c.Email == *cl.ManagerEmail
}

func failureLine(c directory.Contact, err error) string {
	if c.ChatID != 0 {
		return fmt.Sprintf("%s (ID: %d): %v", c.Ident(), c.ChatID, err)
	}
	return fmt.Sprintf("%s (%s): %v", c.Ident(), c.Email, err)
}
