package dto

type SelectCountryRequest struct {
	Code string `json:"code" binding:"required"`
}

type ProceedRequest struct {
	// Optional; empty means pay the currently checked bills.
	BillIDs []string `json:"bill_ids"`
}

type PayOneRequest struct {
	BillID string `json:"bill_id" binding:"required"`
}

type SelectMethodRequest struct {
	MethodID string `json:"method_id" binding:"required"`
}

type SetFieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}
