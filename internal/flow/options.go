package flow

// Options включают шаги, которые нужны не каждой инсталляции бота.
// По умолчанию всё выключено: базовый сценарий заканчивается
// контактами и регионом.
type Options struct {
	// MainMenu заменяет цепочку вопросов «Хотите …?» стартовым меню
	// разделов: клиент выбирает один раздел и сразу попадает в его
	// первый вопрос.
	MainMenu bool
	// CommentStep добавляет шаг свободного комментария с вложениями
	// после блока доставки.
	CommentStep bool
	// AddressStep спрашивает адрес, когда выбрана доставка до адреса.
	AddressStep bool
	// TwoStageProof добавляет вопрос о согласии работать без
	// цветопробы после ответа «Нет» в обойных разделах.
	TwoStageProof bool

	// Лимиты вложений комментария в байтах.
	MaxAttachmentBytes      int64
	MaxTotalAttachmentBytes int64
}

const (
	defaultMaxAttachmentBytes      = 20 << 20
	defaultMaxTotalAttachmentBytes = 50 << 20
)

func (o Options) maxAttachmentBytes() int64 {
	if o.MaxAttachmentBytes > 0 {
		return o.MaxAttachmentBytes
	}
	return defaultMaxAttachmentBytes
}

func (o Options) maxTotalAttachmentBytes() int64 {
	if o.MaxTotalAttachmentBytes > 0 {
		return o.MaxTotalAttachmentBytes
	}
	return defaultMaxTotalAttachmentBytes
}

// Catalogs — справочные перечни для кнопок выбора. Заполняются из
// конфигурации; индекс кнопки ссылается в эти срезы.
type Catalogs struct {
	FrescoCatalogs  []string
	FrescoMaterials []string

	DesignerCatalogs   []string
	DesignerPanelSizes []string

	BackgroundCatalogs      []string
	BackgroundMaterials     []string
	BackgroundHeightsVelour []string
	BackgroundHeightsColore []string

	DeliveryCarriers []string
	DefaultCity      string
}

var designerProductionTypes = []string{"Единым полотном", "Порезать на полотна"}

var deliveryTypes = []string{"До терминала ТК", "До адреса"}

const deliveryTypeAddress = "До адреса"

// BackgroundHeights — допустимые высоты рулона для фактуры.
func (c Catalogs) BackgroundHeights(material string) []string {
	heights := map[string][]string{
		"Велюр":  c.BackgroundHeightsVelour,
		"Колоре": c.BackgroundHeightsColore,
	}
	if h, ok := heights[material]; ok {
		return h
	}
	return c.BackgroundHeightsColore
}
