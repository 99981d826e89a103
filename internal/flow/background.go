package flow

import (
	"context"
	"strings"
)

func (e *Engine) backgroundGate(ctx context.Context, s *Session, yes bool) {
	if !yes {
		e.advance(ctx, s, StateAskPainting, View{
			Prompt:     "Хотите фоновые обои? Нет\n\nХотите картины из каталога фрески и индивидуальные изображения?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
		return
	}
	s.Order.Background.Enabled = true
	e.advance(ctx, s, StateBackgroundMaterial, View{
		Prompt:     "Хотите фоновые обои? Да\n\nФактура (velure/colore):",
		Buttons:    listButtons(e.catalogs.BackgroundMaterials, "bg_material"),
		IncludeNav: true,
	})
}

func (e *Engine) backgroundMaterial(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "bg_material", len(e.catalogs.BackgroundMaterials))
	if !ok {
		return
	}
	material := e.catalogs.BackgroundMaterials[i]
	s.Order.Background.Material = &material
	e.advance(ctx, s, StateBackgroundCatalog, View{
		Prompt:     "Фактура: " + material + "\n\nКаталог:",
		Buttons:    listButtons(e.catalogs.BackgroundCatalogs, "bg_catalog"),
		IncludeNav: true,
	})
}

func (e *Engine) backgroundCatalog(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "bg_catalog", len(e.catalogs.BackgroundCatalogs))
	if !ok {
		return
	}
	catalog := e.catalogs.BackgroundCatalogs[i]
	s.Order.Background.Catalog = &catalog
	e.advance(ctx, s, StateBackgroundArticle, View{
		Prompt:     "Каталог: " + catalog + "\n\nАртикул:",
		IncludeNav: true,
	})
}

func (e *Engine) backgroundArticle(ctx context.Context, s *Session, text string) {
	article := strings.TrimSpace(text)
	s.Order.Background.Article = &article
	e.advance(ctx, s, StateBackgroundHeight, View{
		Prompt:     "Артикул: " + article + "\n\nВысота, см:",
		Buttons:    listButtons(e.backgroundHeightList(s), "bg_height"),
		IncludeNav: true,
	})
}

func (e *Engine) backgroundHeight(ctx context.Context, s *Session, data string) {
	heights := e.backgroundHeightList(s)
	i, ok := listIndex(data, "bg_height", len(heights))
	if !ok {
		return
	}
	height := heights[i]
	s.Order.Background.Size.Height = &height
	e.advance(ctx, s, StateBackgroundWidth, View{
		Prompt:     "Высота, см: " + height + "\n\nШирина, см (минимум 100, далее любое значение):",
		IncludeNav: true,
	})
}

func (e *Engine) backgroundWidth(ctx context.Context, s *Session, text string) {
	width := strings.TrimSpace(text)
	s.Order.Background.Size.Width = &width
	e.advance(ctx, s, StateBackgroundColorProof, View{
		Prompt:     "Ширина, см: " + width + "\n\nНужна цветопроба?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) backgroundColorProof(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Background.Proof.Required = &v
	if e.opts.TwoStageProof && !yes {
		e.advance(ctx, s, StateBackgroundProofConsent, View{
			Prompt:     "Цветопроба нужна: Нет\n\nСогласны продолжить без цветопробы?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
		return
	}
	e.advance(ctx, s, StateAskDelivery, View{
		Prompt:     "Цветопроба нужна: " + v + "\n\nДоставка нужна?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) backgroundProofConsent(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Background.Proof.AgreedWithout = &v
	e.advance(ctx, s, StateAskDelivery, View{
		Prompt:     "Согласие без цветопробы: " + v + "\n\nДоставка нужна?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

// backgroundHeightList — высоты для выбранной фактуры.
func (e *Engine) backgroundHeightList(s *Session) []string {
	material := ""
	if s.Order.Background.Material != nil {
		material = *s.Order.Background.Material
	}
	return e.catalogs.BackgroundHeights(material)
}
