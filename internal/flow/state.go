package flow

// State — шаг диалога. Каждому состоянию соответствует ровно одна
// строка таблицы переходов в engine.go.
type State string

const (
	StateMainMenu State = "main_menu"

	StateAskFresco          State = "ask_fresco"
	StateFrescoCatalog      State = "fresco_catalog"
	StateFrescoArticle      State = "fresco_article"
	StateFrescoWidth        State = "fresco_width"
	StateFrescoHeight       State = "fresco_height"
	StateFrescoMaterial     State = "fresco_material"
	StateFrescoHumidity     State = "fresco_humidity"
	StateFrescoCrackleAging State = "fresco_crackle_aging"
	StateFrescoColorProof   State = "fresco_color_proof"
	StateFrescoNote         State = "fresco_note"

	StateAskDesigner          State = "ask_designer"
	StateDesignerCatalog      State = "designer_catalog"
	StateDesignerArticle      State = "designer_article"
	StateDesignerPanelSize    State = "designer_panel_size"
	StateDesignerPanelOrder   State = "designer_panel_order"
	StateDesignerProduction   State = "designer_production"
	StateDesignerColorProof   State = "designer_color_proof"
	StateDesignerProofConsent State = "designer_proof_consent"
	StateDesignerMirror       State = "designer_mirror"

	StateAskBackground          State = "ask_background"
	StateBackgroundMaterial     State = "background_material"
	StateBackgroundCatalog      State = "background_catalog"
	StateBackgroundArticle      State = "background_article"
	StateBackgroundHeight       State = "background_height"
	StateBackgroundWidth        State = "background_width"
	StateBackgroundColorProof   State = "background_color_proof"
	StateBackgroundProofConsent State = "background_proof_consent"

	StateAskPainting           State = "ask_painting"
	StatePaintingArticle       State = "painting_article"
	StatePaintingCanvasWidth   State = "painting_canvas_width"
	StatePaintingCanvasHeight  State = "painting_canvas_height"
	StatePaintingVisibleWidth  State = "painting_visible_width"
	StatePaintingVisibleHeight State = "painting_visible_height"

	StateAskDelivery     State = "ask_delivery"
	StateDeliveryType    State = "delivery_type"
	StateDeliveryCarrier State = "delivery_carrier"
	StateDeliveryCrate   State = "delivery_crate"
	StateDeliveryAddress State = "delivery_address"

	StateComment State = "comment"

	StateLegalEntity   State = "legal_entity"
	StateCity          State = "city"
	StatePhone         State = "phone"
	StateEmail         State = "email"
	StateRegion        State = "region"
	StateManagerChoice State = "manager_choice"
)
