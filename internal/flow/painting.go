package flow

import (
	"context"
	"strings"
)

func (e *Engine) paintingGate(ctx context.Context, s *Session, yes bool) {
	if !yes {
		e.advance(ctx, s, StateAskDelivery, View{
			Prompt:     "Хотите картины? Нет\n\nДоставка нужна?",
			Buttons:    yesNoButtons(),
			IncludeNav: true,
		})
		return
	}
	s.Order.Painting.Enabled = true
	e.advance(ctx, s, StatePaintingArticle, View{
		Prompt:     "Хотите картины? Да\n\nМатериал: Итальянский холст. Макс. размер: 450 x 140 см.\n\nАртикул:",
		IncludeNav: true,
	})
}

func (e *Engine) paintingArticle(ctx context.Context, s *Session, text string) {
	article := strings.TrimSpace(text)
	s.Order.Painting.Article = &article
	e.advance(ctx, s, StatePaintingCanvasWidth, View{
		Prompt:     "Артикул: " + article + "\n\nПолный размер холста. Ширина, см:",
		IncludeNav: true,
	})
}

func (e *Engine) paintingCanvasWidth(ctx context.Context, s *Session, text string) {
	width := strings.TrimSpace(text)
	s.Order.Painting.Canvas.Width = &width
	e.advance(ctx, s, StatePaintingCanvasHeight, View{
		Prompt:     "Полный размер холста. Ширина, см: " + width + "\n\nПолный размер холста. Высота, см:",
		IncludeNav: true,
	})
}

func (e *Engine) paintingCanvasHeight(ctx context.Context, s *Session, text string) {
	height := strings.TrimSpace(text)
	s.Order.Painting.Canvas.Height = &height
	e.advance(ctx, s, StatePaintingVisibleWidth, View{
		Prompt:     "Полный размер холста. Высота, см: " + height + "\n\nВидимый размер изображения. Ширина, см:",
		IncludeNav: true,
	})
}

func (e *Engine) paintingVisibleWidth(ctx context.Context, s *Session, text string) {
	width := strings.TrimSpace(text)
	s.Order.Painting.Visible.Width = &width
	e.advance(ctx, s, StatePaintingVisibleHeight, View{
		Prompt:     "Видимый размер изображения. Ширина, см: " + width + "\n\nВидимый размер изображения. Высота, см:",
		IncludeNav: true,
	})
}

func (e *Engine) paintingVisibleHeight(ctx context.Context, s *Session, text string) {
	height := strings.TrimSpace(text)
	s.Order.Painting.Visible.Height = &height
	e.advance(ctx, s, StateAskDelivery, View{
		Prompt:     "Видимый размер изображения. Высота, см: " + height + "\n\nДоставка нужна?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}
