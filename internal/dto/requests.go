package dto

// CreateNoticeRequest is the notice form payload. Optional fields map to
// explicit defaults when the notice is created; there is no other validation.
type CreateNoticeRequest struct {
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	Class    string  `json:"class"`
	Category string  `json:"category"`
	Expiry   string  `json:"expiry"` // YYYY-MM-DD, empty for no expiry
	Image    *string `json:"image"`
}

// SubmitApplicationRequest is the admissions form payload.
type SubmitApplicationRequest struct {
	ChildName  string `json:"childName" validate:"required"`
	DOB        string `json:"dob" validate:"required"` // YYYY-MM-DD
	Program    string `json:"program" validate:"required"`
	ParentName string `json:"parentName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address"`
}

// AcceptResult reports a successful enrollment transition.
type AcceptResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StudentID  string `json:"studentId"`
	LoginEmail string `json:"loginEmail"`
}

// UploadResult reports a stored upload.
type UploadResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}

// ExportResult reports a generated notice document.
type ExportResult struct {
	FileName string `json:"fileName"`
	Path     string `json:"path"`
	Pages    int    `json:"pages"`
	Notices  int    `json:"notices"`
}
