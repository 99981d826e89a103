package flow

import (
	"context"

	"github.com/artdecor-nn/order-bot/internal/domain/texts"
)

// Callback-данные кнопок стартового меню разделов.
const (
	dataMenuFresco     = "menu:freski"
	dataMenuDesigner   = "menu:designer"
	dataMenuBackground = "menu:background"
	dataMenuPaintings  = "menu:paintings"
)

func menuButtons() [][]Choice {
	return [][]Choice{
		{{Label: "Фрески", Data: dataMenuFresco}},
		{{Label: "Дизайнерские обои", Data: dataMenuDesigner}},
		{{Label: "Фоновые обои", Data: dataMenuBackground}},
		{{Label: "Картины", Data: dataMenuPaintings}},
	}
}

// mainMenu — выбор раздела в режиме меню: включает раздел и ведёт
// сразу в его первый вопрос, подставляя редактируемый текст раздела.
func (e *Engine) mainMenu(ctx context.Context, s *Session, data string) {
	m, err := e.texts.Load(ctx)
	if err != nil {
		e.log.Error("load texts failed", "err", err)
	}

	switch data {
	case dataMenuFresco:
		s.Order.Fresco.Enabled = true
		e.advance(ctx, s, StateFrescoCatalog, View{
			Prompt:     texts.Value(m, texts.KeyFresco) + "\n\nКаталог:",
			Buttons:    listButtons(e.catalogs.FrescoCatalogs, "freski_catalog"),
			IncludeNav: true,
		})
	case dataMenuDesigner:
		s.Order.Designer.Enabled = true
		e.advance(ctx, s, StateDesignerCatalog, View{
			Prompt:     texts.Value(m, texts.KeyDesigner) + "\n\nКаталог:",
			Buttons:    listButtons(e.catalogs.DesignerCatalogs, "catalog"),
			IncludeNav: true,
		})
	case dataMenuBackground:
		s.Order.Background.Enabled = true
		e.advance(ctx, s, StateBackgroundMaterial, View{
			Prompt:     texts.Value(m, texts.KeyBackground) + "\n\nФактура (velure/colore):",
			Buttons:    listButtons(e.catalogs.BackgroundMaterials, "bg_material"),
			IncludeNav: true,
		})
	case dataMenuPaintings:
		s.Order.Painting.Enabled = true
		e.advance(ctx, s, StatePaintingArticle, View{
			Prompt:     texts.Value(m, texts.KeyPaintings) + "\nМатериал: Итальянский холст. Макс. размер: 450 x 140 см.\n\nАртикул:",
			IncludeNav: true,
		})
	}
}
