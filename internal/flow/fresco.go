package flow

import (
	"context"
	"strings"
)

func (e *Engine) frescoGate(ctx context.Context, s *Session, yes bool) {
	if !yes {
		e.advance(ctx, s, StateAskDesigner, View{
			Prompt:     "Хотите фрески? Нет\n\nХотите дизайнерские обои?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
		return
	}
	s.Order.Fresco.Enabled = true
	e.advance(ctx, s, StateFrescoCatalog, View{
		Prompt:     "Хотите фрески? Да\n\nКаталог:",
		Buttons:    listButtons(e.catalogs.FrescoCatalogs, "freski_catalog"),
		IncludeNav: true,
	})
}

func (e *Engine) frescoCatalog(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "freski_catalog", len(e.catalogs.FrescoCatalogs))
	if !ok {
		return
	}
	catalog := e.catalogs.FrescoCatalogs[i]
	s.Order.Fresco.Catalog = &catalog
	e.advance(ctx, s, StateFrescoArticle, View{
		Prompt:     "Каталог: " + catalog + "\n\nАртикул:",
		IncludeNav: true,
	})
}

func (e *Engine) frescoArticle(ctx context.Context, s *Session, text string) {
	article := strings.TrimSpace(text)
	s.Order.Fresco.Article = &article
	e.advance(ctx, s, StateFrescoWidth, View{
		Prompt:     "Артикул: " + article + "\n\nШирина, см:",
		IncludeNav: true,
	})
}

func (e *Engine) frescoWidth(ctx context.Context, s *Session, text string) {
	width := strings.TrimSpace(text)
	s.Order.Fresco.Size.Width = &width
	e.advance(ctx, s, StateFrescoHeight, View{
		Prompt:     "Ширина, см: " + width + "\n\nВысота, см:",
		IncludeNav: true,
	})
}

func (e *Engine) frescoHeight(ctx context.Context, s *Session, text string) {
	height := strings.TrimSpace(text)
	s.Order.Fresco.Size.Height = &height
	e.advance(ctx, s, StateFrescoMaterial, View{
		Prompt:     "Высота, см: " + height + "\n\nМатериал:",
		Buttons:    listButtons(e.catalogs.FrescoMaterials, "freski_material"),
		IncludeNav: true,
	})
}

// frescoMaterial ветвится по таблице материалов: влажность для
// минеральных фактур, степень старения для кракелюра, обязательная
// цветопроба для колоре, иначе обычный вопрос о цветопробе.
func (e *Engine) frescoMaterial(ctx context.Context, s *Session, data string) {
	i, ok := listIndex(data, "freski_material", len(e.catalogs.FrescoMaterials))
	if !ok {
		return
	}
	material := e.catalogs.FrescoMaterials[i]
	s.Order.Fresco.Material = &material

	switch materialBranch(material) {
	case branchHumidity:
		e.advance(ctx, s, StateFrescoHumidity, View{
			Prompt:     "Материал: " + material + "\n\nПомещение влажное?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
	case branchCrackle:
		e.advance(ctx, s, StateFrescoCrackleAging, View{
			Prompt:     "Кракелюр выбран.\n\nНужна средняя степень старения?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
	case branchProofPreset:
		proof := "Да"
		s.Order.Fresco.ColorProof = &proof
		e.advance(ctx, s, StateFrescoNote, View{
			Prompt:     "Материал: " + material + "\n\nЦветопроба: Да\n\nПримечание:",
			Buttons:    singleButton("Пропустить", dataSkipNote),
			IncludeNav: true,
		})
	default:
		e.advance(ctx, s, StateFrescoColorProof, View{
			Prompt:     "Материал: " + material + "\n\nНужна цветопроба?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
	}
}

func (e *Engine) frescoHumidity(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Fresco.HydroInsulation = &v
	e.advance(ctx, s, StateFrescoColorProof, View{
		Prompt:     "Помещение влажное: " + v + "\n\nНужна цветопроба?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) frescoCrackleAging(ctx context.Context, s *Session, yes bool) {
	material := crackleFresh
	if yes {
		material = crackleAged
	}
	aging := yesWord(yes)
	s.Order.Fresco.Material = &material
	s.Order.Fresco.CrackleAging = &aging
	e.advance(ctx, s, StateFrescoColorProof, View{
		Prompt:     "Нужна цветопроба?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

func (e *Engine) frescoColorProof(ctx context.Context, s *Session, yes bool) {
	v := yesWord(yes)
	s.Order.Fresco.ColorProof = &v
	e.advance(ctx, s, StateFrescoNote, View{
		Prompt:     "Цветопроба: " + v + "\n\nПримечание:",
		Buttons:    singleButton("Пропустить", dataSkipNote),
		IncludeNav: true,
	})
}

func (e *Engine) frescoNoteButton(ctx context.Context, s *Session, data string) {
	if data != dataSkipNote {
		return
	}
	e.finishFrescoNote(ctx, s, nil)
}

func (e *Engine) frescoNoteText(ctx context.Context, s *Session, text string) {
	if isSkipWord(text) {
		e.finishFrescoNote(ctx, s, nil)
		return
	}
	note := strings.TrimSpace(text)
	e.finishFrescoNote(ctx, s, &note)
}

func (e *Engine) finishFrescoNote(ctx context.Context, s *Session, note *string) {
	s.Order.Fresco.Note = note
	display := skippedDisplay
	if note != nil {
		display = *note
	}
	e.advance(ctx, s, StateAskDelivery, View{
		Prompt:     "Примечание: " + display + "\n\nДоставка нужна?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}
