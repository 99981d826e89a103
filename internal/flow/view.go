package flow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/artdecor-nn/order-bot/internal/domain/order"
)

// Навигационные и служебные callback-данные.
const (
	dataYes         = "yes"
	dataNo          = "no"
	dataNavBack     = "nav:back"
	dataNavContinue = "nav:continue"
	dataSkipNote    = "skip_note"
	dataSkipAddress = "skip_address"
	dataCommentDone = "comment_done"
	dataSkipComment = "skip_comment"
)

type Choice struct {
	Label string
	Data  string
}

// View — что показать на текущем шаге. Note не попадает в снимок
// сводки: это разовая пометка (ошибка ввода, превышение лимита).
type View struct {
	Prompt     string
	Note       string
	Buttons    [][]Choice
	IncludeNav bool
}

// StepDescriptor — снимок отображённого шага для истории навигации.
// Snapshot хранит копию заявки на момент показа.
type StepDescriptor struct {
	State      State
	Prompt     string
	Note       string
	Buttons    [][]Choice
	IncludeNav bool
	Snapshot   *order.Document
}

func (d StepDescriptor) view() View {
	return View{Prompt: d.Prompt, Note: d.Note, Buttons: d.Buttons, IncludeNav: d.IncludeNav}
}

func yesNoButtons() [][]Choice {
	return [][]Choice{{
		{Label: "Да", Data: dataYes},
		{Label: "Нет", Data: dataNo},
	}}
}

// listButtons — по одной кнопке на строку, data вида "prefix:индекс".
func listButtons(items []string, prefix string) [][]Choice {
	rows := make([][]Choice, 0, len(items))
	for i, item := range items {
		rows = append(rows, []Choice{{Label: item, Data: fmt.Sprintf("%s:%d", prefix, i)}})
	}
	return rows
}

func singleButton(label, data string) [][]Choice {
	return [][]Choice{{{Label: label, Data: data}}}
}

func navRow(showBack, showContinue bool) []Choice {
	var row []Choice
	if showBack {
		row = append(row, Choice{Label: "Назад", Data: dataNavBack})
	}
	if showContinue {
		row = append(row, Choice{Label: "Продолжить", Data: dataNavContinue})
	}
	return row
}

// listIndex разбирает data "prefix:i" и проверяет границы.
func listIndex(data, prefix string, n int) (int, bool) {
	rest, ok := strings.CutPrefix(data, prefix+":")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func yesWord(yes bool) string {
	if yes {
		return "Да"
	}
	return "Нет"
}
