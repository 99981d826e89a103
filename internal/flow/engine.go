package flow

import (
	"context"
	"log/slog"

	"github.com/artdecor-nn/order-bot/internal/domain/directory"
	"github.com/artdecor-nn/order-bot/internal/domain/order"
	"github.com/artdecor-nn/order-bot/internal/domain/texts"
	"github.com/artdecor-nn/order-bot/internal/infra/metrics"
)

// Transport — канал показа диалога пользователю. Движок держит одно
// редактируемое сообщение на чат: messageID == 0 означает «отправить
// новое», иначе отредактировать существующее.
type Transport interface {
	SendOrEditView(ctx context.Context, chatID int64, messageID int, text string, buttons [][]Choice) (int, error)
	SendText(ctx context.Context, chatID int64, text string) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

// Deliverer доставляет готовую заявку одному получателю.
type Deliverer interface {
	Deliver(ctx context.Context, c directory.Contact, text string, attachments []order.Attachment) error
}

type DirectorySource interface {
	Load(ctx context.Context) (*directory.Snapshot, error)
}

type TextsSource interface {
	Load(ctx context.Context) (map[string]string, error)
}

type EngineConfig struct {
	Transport Transport
	Deliverer Deliverer
	Directory DirectorySource
	Texts     TextsSource
	Log       *slog.Logger

	Options  Options
	Catalogs Catalogs

	AdminIDs        []int64
	ForwardToAdmins bool
}

// Engine ведёт диалог заявки: хранит сессии, применяет таблицу
// переходов и отрисовывает шаги через Transport.
type Engine struct {
	transport Transport
	deliverer Deliverer
	directory DirectorySource
	texts     TextsSource
	log       *slog.Logger

	opts     Options
	catalogs Catalogs

	adminIDs        []int64
	forwardToAdmins bool

	sessions *Sessions
}

func NewEngine(cfg EngineConfig) *Engine {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		transport:       cfg.Transport,
		deliverer:       cfg.Deliverer,
		directory:       cfg.Directory,
		texts:           cfg.Texts,
		log:             log,
		opts:            cfg.Options,
		catalogs:        cfg.Catalogs,
		adminIDs:        cfg.AdminIDs,
		forwardToAdmins: cfg.ForwardToAdmins,
		sessions:        NewSessions(),
	}
}

// step — строка таблицы переходов: какие события принимает состояние.
// answer обслуживает вопросы «Да»/«Нет» (кнопки и текстовые синонимы),
// button — выбор из списка, text — свободный ввод, file — вложения.
type step struct {
	answer func(*Engine, context.Context, *Session, bool)
	button func(*Engine, context.Context, *Session, string)
	text   func(*Engine, context.Context, *Session, string)
	file   func(*Engine, context.Context, *Session, order.Attachment)
}

var steps = map[State]step{
	StateMainMenu: {button: (*Engine).mainMenu},

	StateAskFresco:          {answer: (*Engine).frescoGate},
	StateFrescoCatalog:      {button: (*Engine).frescoCatalog},
	StateFrescoArticle:      {text: (*Engine).frescoArticle},
	StateFrescoWidth:        {text: (*Engine).frescoWidth},
	StateFrescoHeight:       {text: (*Engine).frescoHeight},
	StateFrescoMaterial:     {button: (*Engine).frescoMaterial},
	StateFrescoHumidity:     {answer: (*Engine).frescoHumidity},
	StateFrescoCrackleAging: {answer: (*Engine).frescoCrackleAging},
	StateFrescoColorProof:   {answer: (*Engine).frescoColorProof},
	StateFrescoNote:         {button: (*Engine).frescoNoteButton, text: (*Engine).frescoNoteText},

	StateAskDesigner:          {answer: (*Engine).designerGate},
	StateDesignerCatalog:      {button: (*Engine).designerCatalog},
	StateDesignerArticle:      {text: (*Engine).designerArticle},
	StateDesignerPanelSize:    {button: (*Engine).designerPanelSize},
	StateDesignerPanelOrder:   {text: (*Engine).designerPanelOrder},
	StateDesignerProduction:   {button: (*Engine).designerProduction},
	StateDesignerColorProof:   {answer: (*Engine).designerColorProof},
	StateDesignerProofConsent: {answer: (*Engine).designerProofConsent},
	StateDesignerMirror:       {answer: (*Engine).designerMirror},

	StateAskBackground:          {answer: (*Engine).backgroundGate},
	StateBackgroundMaterial:     {button: (*Engine).backgroundMaterial},
	StateBackgroundCatalog:      {button: (*Engine).backgroundCatalog},
	StateBackgroundArticle:      {text: (*Engine).backgroundArticle},
	StateBackgroundHeight:       {button: (*Engine).backgroundHeight},
	StateBackgroundWidth:        {text: (*Engine).backgroundWidth},
	StateBackgroundColorProof:   {answer: (*Engine).backgroundColorProof},
	StateBackgroundProofConsent: {answer: (*Engine).backgroundProofConsent},

	StateAskPainting:           {answer: (*Engine).paintingGate},
	StatePaintingArticle:       {text: (*Engine).paintingArticle},
	StatePaintingCanvasWidth:   {text: (*Engine).paintingCanvasWidth},
	StatePaintingCanvasHeight:  {text: (*Engine).paintingCanvasHeight},
	StatePaintingVisibleWidth:  {text: (*Engine).paintingVisibleWidth},
	StatePaintingVisibleHeight: {text: (*Engine).paintingVisibleHeight},

	StateAskDelivery:     {answer: (*Engine).deliveryGate},
	StateDeliveryType:    {button: (*Engine).deliveryType},
	StateDeliveryCarrier: {button: (*Engine).deliveryCarrier},
	StateDeliveryCrate:   {answer: (*Engine).deliveryCrate},
	StateDeliveryAddress: {button: (*Engine).deliveryAddressButton, text: (*Engine).deliveryAddressText},

	StateComment: {button: (*Engine).commentButton, text: (*Engine).commentText, file: (*Engine).commentFile},

	StateLegalEntity:   {text: (*Engine).legalEntity},
	StateCity:          {text: (*Engine).city},
	StatePhone:         {text: (*Engine).phone},
	StateEmail:         {text: (*Engine).email},
	StateRegion:        {button: (*Engine).region},
	StateManagerChoice: {button: (*Engine).managerChoice},
}

// Start начинает новую заявку, сбрасывая незавершённую.
func (e *Engine) Start(ctx context.Context, chatID int64, telegram string) {
	if old, ok := e.sessions.Get(chatID); ok && old.MsgID != 0 {
		if err := e.transport.DeleteMessage(ctx, chatID, old.MsgID); err != nil {
			e.log.Debug("delete stale message failed", "chat_id", chatID, "err", err)
		}
	}
	s := e.sessions.Start(chatID, telegram)

	m, err := e.texts.Load(ctx)
	if err != nil {
		e.log.Error("load texts failed", "err", err)
	}
	if err := e.transport.SendText(ctx, chatID, texts.Value(m, texts.KeyStart)); err != nil {
		e.log.Error("send greeting failed", "chat_id", chatID, "err", err)
	}

	metrics.IntakesStarted.Inc()
	e.log.Info("intake started", "chat_id", chatID, "intake_id", s.IntakeID)

	if e.opts.MainMenu {
		e.advance(ctx, s, StateMainMenu, View{
			Prompt:  "Выберите раздел:",
			Buttons: menuButtons(),
		})
		return
	}
	e.advance(ctx, s, StateAskFresco, View{
		Prompt:     "Хотите фрески?",
		Buttons:    yesNoButtons(),
		IncludeNav: true,
	})
}

// Handle обрабатывает событие активного диалога. Событие без сессии
// игнорируется: пользователю нужно отправить /start.
func (e *Engine) Handle(ctx context.Context, chatID int64, ev Event) {
	s, ok := e.sessions.Get(chatID)
	if !ok {
		return
	}

	if ev.Kind == EventButton {
		switch ev.Data {
		case dataNavBack:
			e.navBack(ctx, s)
			return
		case dataNavContinue:
			e.navContinue(ctx, s)
			return
		}
	}

	sp, ok := steps[s.State]
	if !ok {
		e.log.Warn("state without handlers", "state", s.State, "chat_id", chatID)
		return
	}

	switch ev.Kind {
	case EventButton:
		if sp.answer != nil && (ev.Data == dataYes || ev.Data == dataNo) {
			sp.answer(e, ctx, s, ev.Data == dataYes)
			return
		}
		if sp.button != nil {
			sp.button(e, ctx, s, ev.Data)
		}
	case EventText:
		if sp.text != nil {
			sp.text(e, ctx, s, ev.Text)
			return
		}
		if sp.answer != nil {
			if v, ok := NormalizeYesNo(ev.Text); ok {
				sp.answer(e, ctx, s, v == "Да")
				return
			}
			e.repeatStep(ctx, s, "Пожалуйста, ответьте «Да» или «Нет».")
		}
	case EventAttachment:
		if sp.file != nil {
			sp.file(e, ctx, s, ev.Attachment)
		}
	}
}

// Active — есть ли незавершённый диалог в чате.
func (e *Engine) Active(chatID int64) bool {
	_, ok := e.sessions.Get(chatID)
	return ok
}

// Cancel молча прекращает диалог, например при входе в админку.
func (e *Engine) Cancel(chatID int64) {
	if _, ok := e.sessions.Get(chatID); !ok {
		return
	}
	e.sessions.Reset(chatID)
	e.log.Info("intake cancelled", "chat_id", chatID)
}

// advance — обычный переход вперёд: текущий шаг уходит в историю,
// затем отрисовывается следующий.
func (e *Engine) advance(ctx context.Context, s *Session, next State, v View) {
	if s.Current != nil {
		s.History.Push(*s.Current)
	}
	s.State = next
	e.renderView(ctx, s, v)
}

// renderOnly перерисовывает без записи в историю: промежуточные
// экраны перед завершением и повторные показы того же шага.
func (e *Engine) renderOnly(ctx context.Context, s *Session, v View) {
	e.renderView(ctx, s, v)
}

func (e *Engine) repeatStep(ctx context.Context, s *Session, note string) {
	if s.Current == nil {
		return
	}
	v := s.Current.view()
	v.Note = note
	e.renderView(ctx, s, v)
}

func (e *Engine) navBack(ctx context.Context, s *Session) {
	if s.Current == nil {
		return
	}
	d, ok := s.History.Back(*s.Current)
	if !ok {
		return
	}
	s.State = d.State
	e.renderView(ctx, s, d.view())
}

func (e *Engine) navContinue(ctx context.Context, s *Session) {
	if s.Current == nil {
		return
	}
	d, ok := s.History.Continue(*s.Current)
	if !ok {
		return
	}
	s.State = d.State
	e.renderView(ctx, s, d.view())
}

// renderView собирает текст «сводка + вопрос», добавляет
// навигационный ряд и редактирует единственное сообщение диалога.
func (e *Engine) renderView(ctx context.Context, s *Session, v View) {
	text := order.ClientSummary(s.Order) + "\n\n"
	if v.Note != "" {
		text += v.Note + "\n\n"
	}
	text += v.Prompt

	buttons := v.Buttons
	if v.IncludeNav {
		if nav := navRow(s.History.Len() > 0, s.History.Reviewing()); len(nav) > 0 {
			merged := make([][]Choice, 0, len(v.Buttons)+1)
			merged = append(merged, v.Buttons...)
			merged = append(merged, nav)
			buttons = merged
		}
	}

	msgID, err := e.transport.SendOrEditView(ctx, s.ChatID, s.MsgID, text, buttons)
	if err != nil {
		e.log.Error("render step failed", "chat_id", s.ChatID, "state", s.State, "err", err)
	} else if s.MsgID == 0 {
		s.MsgID = msgID
	}

	s.Current = &StepDescriptor{
		State:      s.State,
		Prompt:     v.Prompt,
		Note:       v.Note,
		Buttons:    v.Buttons,
		IncludeNav: v.IncludeNav,
		Snapshot:   s.Order.Clone(),
	}
}
