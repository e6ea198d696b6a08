package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// ByDateRequest is a common struct for endpoints keyed by a calendar date.
type ByDateRequest struct {
	Date string `uri:"date" binding:"required,datetime=2006-01-02"`
}

// Validate performs custom validation for ByDateRequest.
func (r *ByDateRequest) Validate() error {
	return nil
}
