package order

// Document — заявка, которую пошагово заполняет диалог.
// Все необязательные поля указателями: nil означает "ещё не спрошено".
type Document struct {
	Client     Client
	Fresco     Fresco
	Designer   Designer
	Background Background
	Painting   Painting
	Delivery   Delivery
	Comment    Comment
}

type Client struct {
	Telegram      string
	LegalEntity   *string
	City          *string
	Phone         *string
	Email         *string
	Region        *string
	ManagerChatID *int64
	ManagerEmail  *string
	ManagerName   *string
}

// Size хранит размеры как введённый текст, без парсинга.
type Size struct {
	Width  *string
	Height *string
}

// Proof — ответы про цветопробу: нужна ли и согласие работать без неё.
type Proof struct {
	Required      *string
	AgreedWithout *string
}

type Fresco struct {
	Enabled         bool
	Catalog         *string
	Article         *string
	Size            Size
	Material        *string
	ColorProof      *string
	HydroInsulation *string
	CrackleAging    *string
	Note            *string
}

type Designer struct {
	Enabled     bool
	Catalog     *string
	Article     *string
	PanelSize   *string
	PanelsOrder *string
	Production  *string
	Proof       Proof
	Mirror      *string
}

type Background struct {
	Enabled  bool
	Catalog  *string
	Article  *string
	Material *string
	Size     Size
	Proof    Proof
}

type Painting struct {
	Enabled bool
	Article *string
	Canvas  Size
	Visible Size
}

type Delivery struct {
	Needed  *string
	Type    *string
	Carrier *string
	Crate   *string
	Address *string
}

type AttachmentKind string

const (
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentDocument AttachmentKind = "document"
)

// Attachment — ссылка на файл в хранилище транспорта.
type Attachment struct {
	Kind   AttachmentKind
	FileID string
	Name   string
	Size   int64
}

type Comment struct {
	Text        *string
	Attachments []Attachment
	TotalBytes  int64
}

// New возвращает пустую заявку: все разделы выключены, поля не заполнены.
func New(telegram string) *Document {
	return &Document{Client: Client{Telegram: telegram}}
}

// Clone делает глубокую копию для снимков истории.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Client.LegalEntity = cloneStr(d.Client.LegalEntity)
	c.Client.City = cloneStr(d.Client.City)
	c.Client.Phone = cloneStr(d.Client.Phone)
	c.Client.Email = cloneStr(d.Client.Email)
	c.Client.Region = cloneStr(d.Client.Region)
	c.Client.ManagerChatID = cloneInt64(d.Client.ManagerChatID)
	c.Client.ManagerEmail = cloneStr(d.Client.ManagerEmail)
	c.Client.ManagerName = cloneStr(d.Client.ManagerName)

	c.Fresco.Catalog = cloneStr(d.Fresco.Catalog)
	c.Fresco.Article = cloneStr(d.Fresco.Article)
	c.Fresco.Size = d.Fresco.Size.clone()
	c.Fresco.Material = cloneStr(d.Fresco.Material)
	c.Fresco.ColorProof = cloneStr(d.Fresco.ColorProof)
	c.Fresco.HydroInsulation = cloneStr(d.Fresco.HydroInsulation)
	c.Fresco.CrackleAging = cloneStr(d.Fresco.CrackleAging)
	c.Fresco.Note = cloneStr(d.Fresco.Note)

	c.Designer.Catalog = cloneStr(d.Designer.Catalog)
	c.Designer.Article = cloneStr(d.Designer.Article)
	c.Designer.PanelSize = cloneStr(d.Designer.PanelSize)
	c.Designer.PanelsOrder = cloneStr(d.Designer.PanelsOrder)
	c.Designer.Production = cloneStr(d.Designer.Production)
	c.Designer.Proof = d.Designer.Proof.clone()
	c.Designer.Mirror = cloneStr(d.Designer.Mirror)

	c.Background.Catalog = cloneStr(d.Background.Catalog)
	c.Background.Article = cloneStr(d.Background.Article)
	c.Background.Material = cloneStr(d.Background.Material)
	c.Background.Size = d.Background.Size.clone()
	c.Background.Proof = d.Background.Proof.clone()

	c.Painting.Article = cloneStr(d.Painting.Article)
	c.Painting.Canvas = d.Painting.Canvas.clone()
	c.Painting.Visible = d.Painting.Visible.clone()

	c.Delivery.Needed = cloneStr(d.Delivery.Needed)
	c.Delivery.Type = cloneStr(d.Delivery.Type)
	c.Delivery.Carrier = cloneStr(d.Delivery.Carrier)
	c.Delivery.Crate = cloneStr(d.Delivery.Crate)
	c.Delivery.Address = cloneStr(d.Delivery.Address)

	c.Comment.Text = cloneStr(d.Comment.Text)
	c.Comment.Attachments = append([]Attachment(nil), d.Comment.Attachments...)
	return &c
}

func (s Size) clone() Size {
	return Size{Width: cloneStr(s.Width), Height: cloneStr(s.Height)}
}

func (p Proof) clone() Proof {
	return Proof{Required: cloneStr(p.Required), AgreedWithout: cloneStr(p.AgreedWithout)}
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
