package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// MeResponse identifies the admin behind the presented token.
type MeResponse struct {
	AdminID int64 `json:"admin_id"`
}

// UploadBatchResponse lists the per-file results of a multipart upload.
type UploadBatchResponse struct {
	Results   []UploadResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
