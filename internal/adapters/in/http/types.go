package http

// Request and response bodies for the REST API. Money amounts travel as
// decimal strings to avoid float rounding on the wire.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

type CreateProductRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ChangePriceRequest struct {
	Price string `json:"price"`
}

type CreateMenuGroupRequest struct {
	Name string `json:"name"`
}

type MenuGroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MenuLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type CreateMenuRequest struct {
	Name        string            `json:"name"`
	Price       string            `json:"price"`
	MenuGroupID string            `json:"menuGroupId"`
	Lines       []MenuLineRequest `json:"lines"`
}

type MenuResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	MenuGroupID string `json:"menuGroupId"`
	Displayed   bool   `json:"displayed"`
	LineCount   int64  `json:"lineCount"`
}

type OrderLineRequest struct {
	MenuID   string `json:"menuId"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

type CreateOrderRequest struct {
	Channel         string             `json:"channel"`
	Lines           []OrderLineRequest `json:"lines"`
	DeliveryAddress string             `json:"deliveryAddress,omitempty"`
	TableID         string             `json:"tableId,omitempty"`
}

type OrderResponse struct {
	ID              string `json:"id"`
	Channel         string `json:"channel"`
	Status          string `json:"status"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	Total           string `json:"total"`
}

type CreateTableRequest struct {
	Name string `json:"name"`
}

type ChangeGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

type TableResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Empty          bool   `json:"empty"`
}
