package docview

import (
	"fmt"
	"strings"
)

// Placeholder synthesizes deterministic demo text for a document whose
// content is absent or could not be rendered. The template is picked
// from the document name.
func Placeholder(name string) string {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "техническое задание") || strings.Contains(lower, "тз"):
		return strings.Join([]string{
			"ТЕХНИЧЕСКОЕ ЗАДАНИЕ",
			"",
			"1. Общие сведения",
			"Настоящий документ определяет требования к разрабатываемой системе.",
			"",
			"2. Назначение и цели создания системы",
			"Система предназначена для автоматизации процессов управления проектами.",
			"",
			"3. Требования к системе",
			"3.1. Система должна обеспечивать ведение проектов и документов.",
			"3.2. Система должна поддерживать работу в автономном режиме.",
		}, "\n")
	case strings.Contains(lower, "спецификация"):
		return strings.Join([]string{
			"СПЕЦИФИКАЦИЯ",
			"",
			"Раздел 1. Состав изделия",
			"Раздел 2. Комплект поставки",
			"Раздел 3. Технические характеристики",
		}, "\n")
	default:
		return fmt.Sprintf("Документ «%s»\n\nСодержимое документа будет доступно после загрузки файла.", name)
	}
}
