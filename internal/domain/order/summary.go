package order

import (
	"fmt"
	"strings"
)

// Заголовки разделов в сводках.
const (
	headerFresco     = "ФРЕСКИ"
	headerDesigner   = "ДИЗАЙНЕРСКИЕ ОБОИ"
	headerBackground = "ФОНОВЫЕ ОБОИ"
	headerPainting   = "КАРТИНЫ ИЗ КАТАЛОГА ФРЕСКИ И ИНДИВИДУАЛЬНЫЕ ИЗОБРАЖЕНИЯ"
	headerDelivery   = "ДОСТАВКА"
	headerComment    = "КОММЕНТАРИЙ"
)

// ManagerSummary — полная сводка для менеджеров и админов.
// Выключенные разделы показываются строкой "Раздел: Нет",
// незаполненные поля прочерком.
func ManagerSummary(d *Document) string {
	lines := []string{
		"Новая заявка",
		"Пользователь: " + d.Client.Telegram,
		"Юрлицо: " + safeValue(d.Client.LegalEntity),
		"Город: " + safeValue(d.Client.City),
		"Телефон: " + safeValue(d.Client.Phone),
		"Email: " + safeValue(d.Client.Email),
		"Регион доставки: " + safeValue(d.Client.Region),
	}
	if set(d.Client.ManagerName) {
		lines = append(lines, "Менеджер: "+*d.Client.ManagerName)
	}
	lines = append(lines, "")

	if d.Fresco.Enabled {
		f := d.Fresco
		lines = append(lines,
			headerFresco+": Да",
			"Каталог: "+safeValue(f.Catalog),
			"Артикул: "+safeValue(f.Article),
			"Ширина, см: "+safeValue(f.Size.Width),
			"Высота, см: "+safeValue(f.Size.Height),
			"Материал: "+safeValue(f.Material),
			"Цветопроба: "+safeValue(f.ColorProof),
			"Гидроизоляция: "+safeValue(f.HydroInsulation),
			"Старение кракелюра: "+safeValue(f.CrackleAging),
			"Примечание: "+safeValue(f.Note),
		)
	} else {
		lines = append(lines, headerFresco+": Нет")
	}
	lines = append(lines, "")

	if d.Designer.Enabled {
		w := d.Designer
		lines = append(lines,
			headerDesigner+": Да",
			"Каталог: "+safeValue(w.Catalog),
			"Артикул: "+safeValue(w.Article),
			"Материал: Велюр",
			"Размер панели: "+safeValue(w.PanelSize),
			"Порядок панелей: "+safeValue(w.PanelsOrder),
			"Тип производства: "+safeValue(w.Production),
			"Цветопроба нужна: "+safeValue(w.Proof.Required),
		)
		if w.Proof.AgreedWithout != nil {
			lines = append(lines, "Согласие без цветопробы: "+safeValue(w.Proof.AgreedWithout))
		}
		lines = append(lines, "Отзеркалить: "+safeValue(w.Mirror))
	} else {
		lines = append(lines, headerDesigner+": Нет")
	}
	lines = append(lines, "")

	if d.Background.Enabled {
		b := d.Background
		lines = append(lines,
			headerBackground+": Да",
			"Фактура: "+safeValue(b.Material),
			"Каталог: "+safeValue(b.Catalog),
			"Артикул: "+safeValue(b.Article),
			"Высота, см: "+safeValue(b.Size.Height),
			"Ширина, см: "+safeValue(b.Size.Width),
			"Цветопроба нужна: "+safeValue(b.Proof.Required),
		)
		if b.Proof.AgreedWithout != nil {
			lines = append(lines, "Согласие без цветопробы: "+safeValue(b.Proof.AgreedWithout))
		}
	} else {
		lines = append(lines, headerBackground+": Нет")
	}
	lines = append(lines, "")

	if d.Painting.Enabled {
		p := d.Painting
		lines = append(lines,
			headerPainting+": Да",
			"Материал: Итальянский холст",
			"Макс. размер, см: 450 x 140",
			"Артикул: "+safeValue(p.Article),
			"Полный размер холста, см:",
			"  Ширина: "+safeValue(p.Canvas.Width),
			"  Высота: "+safeValue(p.Canvas.Height),
			"Видимый размер изображения, см:",
			"  Ширина: "+safeValue(p.Visible.Width),
			"  Высота: "+safeValue(p.Visible.Height),
			"",
		)
	}

	if d.Delivery.Needed != nil {
		lines = append(lines, deliveryLines(d.Delivery)...)
		lines = append(lines, "")
	}

	if cl := commentLines(d.Comment); len(cl) > 0 {
		lines = append(lines, cl...)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// ClientSummary — сводка для клиента: только включённые разделы
// и только заполненные поля.
func ClientSummary(d *Document) string {
	var lines []string

	var client []string
	if set(d.Client.LegalEntity) {
		client = append(client, "Юрлицо: "+*d.Client.LegalEntity)
	}
	if set(d.Client.City) {
		client = append(client, "Город: "+*d.Client.City)
	}
	if set(d.Client.Phone) {
		client = append(client, "Телефон: "+*d.Client.Phone)
	}
	if set(d.Client.Email) {
		client = append(client, "Email: "+*d.Client.Email)
	}
	if set(d.Client.Region) {
		client = append(client, "Регион доставки: "+*d.Client.Region)
	}
	if set(d.Client.ManagerName) {
		client = append(client, "Менеджер: "+*d.Client.ManagerName)
	}
	if len(client) > 0 {
		lines = append(lines, client...)
		lines = append(lines, "")
	}

	if d.Fresco.Enabled {
		f := d.Fresco
		lines = append(lines, headerFresco)
		if set(f.Catalog) {
			lines = append(lines, "Каталог: "+*f.Catalog)
		}
		if set(f.Article) {
			lines = append(lines, "Артикул: "+*f.Article)
		}
		if set(f.Size.Width) {
			lines = append(lines, "Ширина, см: "+*f.Size.Width)
		}
		if set(f.Size.Height) {
			lines = append(lines, "Высота, см: "+*f.Size.Height)
		}
		if set(f.Material) {
			lines = append(lines, "Материал: "+*f.Material)
		}
		if f.ColorProof != nil {
			lines = append(lines, "Цветопроба: "+safeValue(f.ColorProof))
		}
		if f.HydroInsulation != nil {
			lines = append(lines, "Гидроизоляция: "+safeValue(f.HydroInsulation))
		}
		if f.CrackleAging != nil {
			lines = append(lines, "Старение кракелюра: "+safeValue(f.CrackleAging))
		}
		if f.Note != nil {
			lines = append(lines, "Примечание: "+safeValue(f.Note))
		}
		lines = append(lines, "")
	}

	if d.Designer.Enabled {
		w := d.Designer
		lines = append(lines, headerDesigner)
		if set(w.Catalog) {
			lines = append(lines, "Каталог: "+*w.Catalog)
		}
		if set(w.Article) {
			lines = append(lines, "Артикул: "+*w.Article)
		}
		lines = append(lines, "Материал: Велюр")
		if set(w.PanelSize) {
			lines = append(lines, "Размер панели: "+*w.PanelSize)
		}
		if set(w.PanelsOrder) {
			lines = append(lines, "Порядок панелей: "+*w.PanelsOrder)
		}
		if set(w.Production) {
			lines = append(lines, "Тип производства: "+*w.Production)
		}
		if w.Proof.Required != nil {
			lines = append(lines, "Цветопроба нужна: "+safeValue(w.Proof.Required))
		}
		if w.Proof.AgreedWithout != nil {
			lines = append(lines, "Согласие без цветопробы: "+safeValue(w.Proof.AgreedWithout))
		}
		if w.Mirror != nil {
			lines = append(lines, "Отзеркалить: "+safeValue(w.Mirror))
		}
		lines = append(lines, "")
	}

	if d.Background.Enabled {
		b := d.Background
		lines = append(lines, headerBackground)
		if set(b.Material) {
			lines = append(lines, "Фактура: "+*b.Material)
		}
		if set(b.Catalog) {
			lines = append(lines, "Каталог: "+*b.Catalog)
		}
		if set(b.Article) {
			lines = append(lines, "Артикул: "+*b.Article)
		}
		if set(b.Size.Height) {
			lines = append(lines, "Высота, см: "+*b.Size.Height)
		}
		if set(b.Size.Width) {
			lines = append(lines, "Ширина, см: "+*b.Size.Width)
		}
		if b.Proof.Required != nil {
			lines = append(lines, "Цветопроба нужна: "+safeValue(b.Proof.Required))
		}
		if b.Proof.AgreedWithout != nil {
			lines = append(lines, "Согласие без цветопробы: "+safeValue(b.Proof.AgreedWithout))
		}
		lines = append(lines, "")
	}

	if d.Painting.Enabled {
		p := d.Painting
		lines = append(lines,
			headerPainting,
			"Материал: Итальянский холст",
			"Макс. размер, см: 450 x 140",
		)
		if set(p.Article) {
			lines = append(lines, "Артикул: "+*p.Article)
		}
		if set(p.Canvas.Width) || set(p.Canvas.Height) {
			lines = append(lines, "Полный размер холста, см:")
			if set(p.Canvas.Width) {
				lines = append(lines, "  Ширина: "+*p.Canvas.Width)
			}
			if set(p.Canvas.Height) {
				lines = append(lines, "  Высота: "+*p.Canvas.Height)
			}
		}
		if set(p.Visible.Width) || set(p.Visible.Height) {
			lines = append(lines, "Видимый размер изображения, см:")
			if set(p.Visible.Width) {
				lines = append(lines, "  Ширина: "+*p.Visible.Width)
			}
			if set(p.Visible.Height) {
				lines = append(lines, "  Высота: "+*p.Visible.Height)
			}
		}
		lines = append(lines, "")
	}

	if d.Delivery.Needed != nil {
		lines = append(lines, deliveryLines(d.Delivery)...)
		lines = append(lines, "")
	}

	if cl := commentLines(d.Comment); len(cl) > 0 {
		lines = append(lines, cl...)
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func deliveryLines(dl Delivery) []string {
	lines := []string{
		headerDelivery,
		"Нужна: " + safeValue(dl.Needed),
		"Тип: " + safeValue(dl.Type),
		"ТК/Самовывоз: " + safeValue(dl.Carrier),
		"Обрешетка: " + safeValue(dl.Crate),
	}
	if dl.Address != nil {
		lines = append(lines, "Адрес: "+safeValue(dl.Address))
	}
	return lines
}

func commentLines(c Comment) []string {
	if c.Text == nil && len(c.Attachments) == 0 {
		return nil
	}
	lines := []string{headerComment}
	if c.Text != nil {
		lines = append(lines, "Текст: "+safeValue(c.Text))
	}
	if len(c.Attachments) > 0 {
		lines = append(lines, fmt.Sprintf("Вложения: %d", len(c.Attachments)))
	}
	return lines
}

func safeValue(p *string) string {
	if p == nil {
		return "-"
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return "-"
	}
	return v
}

func set(p *string) bool {
	return p != nil && *p != ""
}
