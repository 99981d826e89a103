package flow

import (
	"context"
	"strings"
)

func (e *Engine) designerGate(ctx context.Context, s *Session, yes bool) {
	if !yes {
		e.advance(ctx, s, StateAskBackground, View{
			Prompt:     "Хотите дизайнерские обои? Нет\n\nХотите фоновые обои?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
		return
	}
	s.Order.Designer.Enabled = true
	e.advance(ctx, s, StateDesignerCatalog, View{
		Prompt:     "Хотите дизайнерские обои? Да\n\nКаталог:",
		Buttons:    listButtons(e.catalogs.DesignerCatalogs, "catalog"),
		IncludeNav: true,
	})
}

func (e *Engine) designerCatalog(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "catalog", len(e.catalogs.DesignerCatalogs))
	if !ok {
		return
	}
	catalog := e.catalogs.DesignerCatalogs[i]
	s.Order.Designer.Catalog = &catalog
	e.advance(ctx, s, StateDesignerArticle, View{
		Prompt:     "Каталог: " + catalog + "\n\nАртикул:",
		IncludeNav: true,
	})
}

func (e *Engine) designerArticle(ctx context.Context, s *Session, text string) {
	article := strings.TrimSpace(text)
	s.Order.Designer.Article = &article

	// Артикулы фресок начинаются с ID-, предупреждаем о вероятной
	// ошибке раздела, но не прерываем ввод.
	if strings.HasPrefix(strings.ToUpper(article), "ID-") {
		if err := e.transport.SendText(ctx, s.ChatID, "Похоже, это фреска. Проверьте, пожалуйста, раздел."); err != nil {
			e.log.Error("send hint failed", "chat_id", s.ChatID, "err", err)
		}
	}

	e.advance(ctx, s, StateDesignerPanelSize, View{
		Prompt:     "Материал: Велюр.\n\nРазмер панели:",
		Buttons:    listButtons(e.catalogs.DesignerPanelSizes, "panel_size"),
		IncludeNav: true,
	})
}

func (e *Engine) designerPanelSize(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "panel_size", len(e.catalogs.DesignerPanelSizes))
	if !ok {
		return
	}
	size := e.catalogs.DesignerPanelSizes[i]
	s.Order.Designer.PanelSize = &size
	e.advance(ctx, s, StateDesignerPanelOrder, View{
		Prompt:     "Размер панели: " + size + "\n\nПорядок панелей слева направо:",
		IncludeNav: true,
	})
}

func (e *Engine) designerPanelOrder(ctx context.Context, s *Session, text string) {
	orderText := strings.TrimSpace(text)
	s.Order.Designer.PanelsOrder = &orderText
	e.advance(ctx, s, StateDesignerProduction, View{
		Prompt:     "Тип производства:",
		Buttons:    listButtons(designerProductionTypes, "production_type"),
		IncludeNav: true,
	})
}

func (e *Engine) designerProduction(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "production_type", len(designerProductionTypes))
	if !ok {
		return
	}
	production := designerProductionTypes[i]
	s.Order.Designer.Production = &production
	e.advance(ctx, s, StateDesignerColorProof, View{
		Prompt:     "Тип производства: " + production + "\n\nНужна цветопроба?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) designerColorProof(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Designer.Proof.Required = &v
	if e.opts.TwoStageProof && !yes {
		e.advance(ctx, s, StateDesignerProofConsent, View{
			Prompt:     "Цветопроба нужна: Нет\n\nСогласны продолжить без цветопробы?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
		return
	}
	e.advance(ctx, s, StateDesignerMirror, View{
		Prompt:     "Цветопроба нужна: " + v + "\n\nОтзеркалить?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) designerProofConsent(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Designer.Proof.AgreedWithout = &v
	e.advance(ctx, s, StateDesignerMirror, View{
		Prompt:     "Согласие без цветопробы: " + v + "\n\nОтзеркалить?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) designerMirror(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Designer.Mirror = &v
	e.advance(ctx, s, StateAskDelivery, View{
		Prompt:     "Отзеркалить: " + v + "\n\nДоставка нужна?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}
