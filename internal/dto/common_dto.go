package dto

// DataResponse is the success envelope carrying a payload.
type DataResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ListResponse is the success envelope for collections.
type ListResponse struct {
	Status  string      `json:"status"`
	Results int         `json:"results"`
	Data    interface{} `json:"data"`
}

// MessageResponse is the success envelope without a payload.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

func Success(data interface{}) DataResponse {
	return DataResponse{Status: "success", Data: data}
}

func SuccessList(results int, data interface{}) ListResponse {
	return ListResponse{Status: "success", Results: results, Data: data}
}

func SuccessMessage(message string) MessageResponse {
	return MessageResponse{Status: "success", Message: message}
}

func Failed(statusCode int, message string) ErrorResponse {
	return ErrorResponse{Status: "failed", StatusCode: statusCode, Message: message}
}
