package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/order"
)

func (e *Engine) deliveryGate(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Delivery.Needed = &v
	if !yes {
		e.afterDelivery(ctx, s, "Доставка не нужна.")
		return
	}
	e.advance(ctx, s, StateDeliveryType, View{
		Prompt:     "Доставка нужна: Да\n\nДо терминала ТК или до адреса?",
		Buttons:    listButtons(deliveryTypes, "delivery_type"),
		IncludeNav: true,
	})
}

func (e *Engine) deliveryType(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "delivery_type", len(deliveryTypes))
	if !ok {
		return
	}
	dtype := deliveryTypes[i]
	s.Order.Delivery.Type = &dtype
	e.advance(ctx, s, StateDeliveryCarrier, View{
		Prompt:     "Тип доставки: " + dtype + "\n\nТК или самовывоз:",
		Buttons:    listButtons(e.catalogs.DeliveryCarriers, "delivery_carrier"),
		IncludeNav: true,
	})
}

func (e *Engine) deliveryCarrier(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "delivery_carrier", len(e.catalogs.DeliveryCarriers))
	if !ok {
		return
	}
	carrier := e.catalogs.DeliveryCarriers[i]
	s.Order.Delivery.Carrier = &carrier
	e.advance(ctx, s, StateDeliveryCrate, View{
		Prompt:     "ТК/Самовывоз: " + carrier + "\n\nОбрешетка нужна?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) deliveryCrate(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Delivery.Crate = &v
	echo := "Обрешетка: " + v

	needAddress := e.opts.AddressStep &&
		s.Order.Delivery.Type != nil && *s.Order.Delivery.Type == deliveryTypeAddress
	if needAddress {
		prompt := echo + "\n\nАдрес доставки:"
		if e.catalogs.DefaultCity != "" {
			prompt = echo + "\n\nАдрес доставки (по умолчанию город " + e.catalogs.DefaultCity + "):"
		}
		e.advance(ctx, s, StateDeliveryAddress, View{
			Prompt:     prompt,
			Buttons:    singleButton("Пропустить", dataSkipAddress),
			IncludeNav: true,
		})
		return
	}
	e.afterDelivery(ctx, s, echo)
}

func (e *Engine) deliveryAddressButton(ctx context.Context, s *Session, data string) {
	if data != dataSkipAddress {
		return
	}
	e.finishDeliveryAddress(ctx, s, nil)
}

func (e *Engine) deliveryAddressText(ctx context.Context, s *Session, text string) {
	if isSkipWord(text) {
		e.finishDeliveryAddress(ctx, s, nil)
		return
	}
	addr := strings.TrimSpace(text)
	e.finishDeliveryAddress(ctx, s, &addr)
}

func (e *Engine) finishDeliveryAddress(ctx context.Context, s *Session, addr *string) {
	s.Order.Delivery.Address = addr
	display := skippedDisplay
	if addr != nil {
		display = *addr
	}
	e.afterDelivery(ctx, s, "Адрес: "+display)
}

// afterDelivery переходит к шагу комментария, если он включён,
// иначе сразу к реквизитам.
func (e *Engine) afterDelivery(ctx context.Context, s *Session, echo string) {
	if e.opts.CommentStep {
		e.advance(ctx, s, StateComment, View{
			Prompt: echo + "\n\nКомментарий к заказу. Отправьте текст, фото или документы. Когда закончите, нажмите «Готово».",
			Buttons: [][]Choice{
				{{Label: "Готово", Data: dataCommentDone}},
				{{Label: "Пропустить", Data: dataSkipComment}},
			},
			IncludeNav: true,
		})
		return
	}
	e.advance(ctx, s, StateLegalEntity, View{
		Prompt:     echo + "\n\nЮрлицо (ИП/ООО):",
		IncludeNav: true,
	})
}

func (e *Engine) commentText(ctx context.Context, s *Session, text string) {
	if isSkipWord(text) {
		e.skipComment(ctx, s)
		return
	}
	comment := strings.TrimSpace(text)
	s.Order.Comment.Text = &comment
	if s.Current == nil {
		return
	}
	v := s.Current.view()
	v.Note = ""
	e.renderOnly(ctx, s, v)
}

func (e *Engine) commentFile(ctx context.Context, s *Session, a order.Attachment) {
	if a.Size > e.opts.maxAttachmentBytes() {
		e.repeatStep(ctx, s, fmt.Sprintf("Файл слишком большой. Лимит %d МБ.", e.opts.maxAttachmentBytes()>>20))
		return
	}
	if s.Order.Comment.TotalBytes+a.Size > e.opts.maxTotalAttachmentBytes() {
		e.repeatStep(ctx, s, fmt.Sprintf("Превышен общий лимит вложений %d МБ.", e.opts.maxTotalAttachmentBytes()>>20))
		return
	}
	s.Order.Comment.Attachments = append(s.Order.Comment.Attachments, a)
	s.Order.Comment.TotalBytes += a.Size
	if s.Current == nil {
		return
	}
	v := s.Current.view()
	v.Note = ""
	e.renderOnly(ctx, s, v)
}

func (e *Engine) commentButton(ctx context.Context, s *Session, data string) {
	switch data {
	case dataCommentDone:
		e.advance(ctx, s, StateLegalEntity, View{
			Prompt:     "Комментарий сохранен.\n\nЮрлицо (ИП/ООО):",
			IncludeNav: true,
		})
	case dataSkipComment:
		e.skipComment(ctx, s)
	}
}

func (e *Engine) skipComment(ctx context.Context, s *Session) {
	s.Order.Comment = order.Comment{}
	e.advance(ctx, s, StateLegalEntity, View{
		Prompt:     "Комментарий: пропущено\n\nЮрлицо (ИП/ООО):",
		IncludeNav: true,
	})
}

func (e *Engine) legalEntity(ctx context.Context, s *Session, text string) {
	legal := strings.TrimSpace(text)
	s.Order.Client.LegalEntity = &legal
	e.advance(ctx, s, StateCity, View{
		Prompt:     "Город:",
		IncludeNav: true,
	})
}

func (e *Engine) city(ctx context.Context, s *Session, text string) {
	city := strings.TrimSpace(text)
	s.Order.Client.City = &city
	e.advance(ctx, s, StatePhone, View{
		Prompt:     "Телефон:",
		IncludeNav: true,
	})
}

func (e *Engine) phone(ctx context.Context, s *Session, text string) {
	phone := strings.TrimSpace(text)
	s.Order.Client.Phone = &phone
	e.advance(ctx, s, StateEmail, View{
		Prompt:     "Email:",
		IncludeNav: true,
	})
}

// email завершает реквизиты и загружает справочник регионов.
// Срез хранится в сессии до конца диалога, чтобы выбор по индексу и
// рассылка видели один и тот же список.
func (e *Engine) email(ctx context.Context, s *Session, text string) {
	email := strings.TrimSpace(text)
	s.Order.Client.Email = &email

	snap, err := e.directory.Load(ctx)
	if err != nil {
		e.log.Error("load directory failed", "chat_id", s.ChatID, "err", err)
		e.repeatStep(ctx, s, "Не удалось загрузить список регионов. Попробуйте ещё раз.")
		return
	}
	s.Directory = snap

	e.advance(ctx, s, StateRegion, View{
		Prompt:     "Выберите регион:",
		Buttons:    listButtons(snap.RegionNames(), "region"),
		IncludeNav: true,
	})
}

func (e *Engine) region(ctx context.Context, s *Session, data string) {
	if s.Directory == nil {
		return
	}
	names := s.Directory.RegionNames()
	i, ok := listIndex(data, "region", len(names))
	if !ok {
		return
	}
	region := names[i]
	s.Order.Client.Region = &region

	contacts := s.Directory.Contacts(region)
	switch len(contacts) {
	case 0:
		e.renderOnly(ctx, s, View{Prompt: "Регион: " + region, IncludeNav: true})
		e.finalize(ctx, s)
	case 1:
		e.selectManager(s, contacts[0])
		e.renderOnly(ctx, s, View{
			Prompt:     "Регион: " + region + "\n\nМенеджер: " + displayName(contacts[0]),
			IncludeNav: true,
		})
		e.finalize(ctx, s)
	default:
		labels := make([]string, 0, len(contacts))
		for _, c := range contacts {
			labels = append(labels, c.Label())
		}
		e.advance(ctx, s, StateManagerChoice, View{
			Prompt:     "Регион: " + region + "\n\nВыберите менеджера:",
			Buttons:    listButtons(labels, "manager"),
			IncludeNav: true,
		})
	}
}

func (e *Engine) managerChoice(ctx context.Context, s *Session, data string) {
	if s.Directory == nil || s.Order.Client.Region == nil {
		return
	}
	rest, ok := strings.CutPrefix(data, "manager:")
	if !ok {
		return
	}
	contacts := s.Directory.Contacts(*s.Order.Client.Region)
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || i >= len(contacts) {
		e.advance(ctx, s, StateRegion, View{
			Prompt:     "Выберите регион:",
			Note:       "Менеджер не найден. Попробуйте выбрать регион заново.",
			Buttons:    listButtons(s.Directory.RegionNames(), "region"),
			IncludeNav: true,
		})
		return
	}
	c := contacts[i]
	e.selectManager(s, c)
	e.renderOnly(ctx, s, View{Prompt: "Менеджер: " + displayName(c), IncludeNav: true})
	e.finalize(ctx, s)
}

func (e *Engine) selectManager(s *Session, c directory.Contact) {
	if c.ChatID != 0 {
		chatID := c.ChatID
		s.Order.Client.ManagerChatID = &chatID
	}
	if c.Email != "" {
		email := c.Email
		s.Order.Client.ManagerEmail = &email
	}
	if c.Name != "" {
		name := c.Name
		s.Order.Client.ManagerName = &name
	}
}

func displayName(c directory.Contact) string {
	if c.Name != "" {
		return c.Name
	}
	if c.ChatID != 0 {
		return strconv.FormatInt(c.ChatID, 10)
	}
	return c.Email
}
