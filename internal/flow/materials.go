package flow

import "strings"

// frescoBranch определяет, какой вопрос следует за выбором материала
// фрески.
type frescoBranch int

const (
	// branchColorProof — обычный вопрос про цветопробу.
	branchColorProof frescoBranch = iota
	// branchHumidity — сначала вопрос про влажное помещение.
	branchHumidity
	// branchCrackle — уточнение степени старения, ответ переписывает
	// материал на уточнённый вариант.
	branchCrackle
	// branchProofPreset — цветопроба включена самим материалом,
	// сразу шаг примечания.
	branchProofPreset
)

// Ветвления по материалу фрески. Материалы вне таблицы идут обычным
// путём через вопрос о цветопробе.
var frescoMaterialBranches = map[string]frescoBranch{
	"Саббия":       branchHumidity,
	"Саббия Фасад": branchHumidity,
	"Пиетра":       branchHumidity,
	"Кракелюр":     branchCrackle,
	"Колоре":       branchProofPreset,
	"Колоре Лайт":  branchProofPreset,
}

func materialBranch(material string) frescoBranch {
	if b, ok := frescoMaterialBranches[material]; ok {
		return b
	}
	return branchColorProof
}

// Уточнённые варианты кракелюра, подставляемые после вопроса о
// степени старения.
const (
	crackleAged  = "Кракелюр средняя степень"
	crackleFresh = "Кракелюр без старения"
)

// Синонимы пропуска для текстовых шагов с кнопкой «Пропустить».
func isSkipWord(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "пропустить", "пропуск", "skip":
		return true
	}
	return false
}

const skippedDisplay = "пропущено"

// NormalizeYesNo приводит текстовый ответ к «Да»/«Нет».
func NormalizeYesNo(text string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "да", "yes", "y", "д":
		return "Да", true
	case "нет", "no", "n", "н":
		return "Нет", true
	}
	return "", false
}
