package http

import "time"

// Error is the generic error payload for unexpected failures.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse reports field-level problems with a sale submission.
// The submitted values are echoed back so the form can be re-displayed with
// errors next to the relevant controls.
type ValidationErrorResponse struct {
	FieldErrors map[string]string `json:"fieldErrors"`
	Fields      SubmittedFields   `json:"fields"`
}

// SubmittedFields echoes a rejected sale submission.
type SubmittedFields struct {
	Customer string   `json:"customer"`
	Date     string   `json:"date"`
	Hogs     []string `json:"hogs"`
}

// MalformedRequestResponse reports a submission whose shape is fundamentally wrong.
type MalformedRequestResponse struct {
	FormError string `json:"formError"`
}

// Hog is one hog in inventory listings.
type Hog struct {
	ID            string  `json:"id"`
	Eartag        string  `json:"eartag"`
	LiveWeight    float64 `json:"liveWeight"`
	FarmgatePrice float64 `json:"farmgatePrice"`
	DeliveryID    *string `json:"deliveryId,omitempty"`
	TransactionID *string `json:"transactionId,omitempty"`
}

// DeliverySummary is the reporting view of one delivery.
// Averages are null for a delivery with zero hogs.
type DeliverySummary struct {
	ID                   string   `json:"id"`
	ArrivalDate          string   `json:"arrivalDate"`
	Supplier             string   `json:"supplier"`
	ModeOfPayment        string   `json:"modeOfPayment"`
	NumberOfHogs         int      `json:"numberOfHogs"`
	TotalLiveWeight      float64  `json:"totalLiveWeight"`
	TotalAmount          float64  `json:"totalAmount"`
	AverageFarmgatePrice *float64 `json:"averageFarmgatePrice"`
	AverageWeight        *float64 `json:"averageWeight"`
}

// NewDelivery is the intake request body.
type NewDelivery struct {
	ArrivalDate   string           `json:"arrivalDate"`
	ModeOfPayment string           `json:"modeOfPayment"`
	SupplierID    string           `json:"supplierId"`
	Hogs          []NewDeliveryHog `json:"hogs"`
}

// NewDeliveryHog is one intake row in a delivery request.
type NewDeliveryHog struct {
	Eartag        string  `json:"eartag"`
	LiveWeight    float64 `json:"liveWeight"`
	FarmgatePrice float64 `json:"farmgatePrice"`
}

// NewTransaction is the sale request body. Fields are untyped on purpose:
// the submission comes from an external form and shape errors are reported
// separately from value errors.
type NewTransaction struct {
	Customer any `json:"customer"`
	Date     any `json:"date"`
	Hogs     any `json:"hogs"`
}

// TransactionSummary is one sale in ledger listings.
type TransactionSummary struct {
	ID              string  `json:"id"`
	TransactionDate string  `json:"transactionDate"`
	Customer        string  `json:"customer"`
	NumberOfHogs    int     `json:"numberOfHogs"`
	TotalAmount     float64 `json:"totalAmount"`
}

// TransactionDetail is the full view of one sale.
type TransactionDetail struct {
	ID              string           `json:"id"`
	TransactionDate string           `json:"transactionDate"`
	CustomerID      string           `json:"customerId"`
	Customer        string           `json:"customer"`
	Hogs            []TransactionHog `json:"hogs"`
	TotalAmount     float64          `json:"totalAmount"`
}

// TransactionHog is one sold hog line within a sale detail.
type TransactionHog struct {
	ID            string  `json:"id"`
	Eartag        string  `json:"eartag"`
	LiveWeight    float64 `json:"liveWeight"`
	FarmgatePrice float64 `json:"farmgatePrice"`
	Amount        float64 `json:"amount"`
}

// Customer is one entry in the customer directory.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatedResponse confirms a created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// dateLayout renders calendar dates in responses.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
