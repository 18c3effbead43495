package dto

type CreateSnippetRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

type UpdateSnippetRequest = CreateSnippetRequest

type CreateDocumentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	// Tags is a comma-separated list, split and trimmed server-side.
	Tags string `json:"tags"`
}

type UpdateDocumentRequest = CreateDocumentRequest

type CreateBugRequest struct {
	Content string `json:"content"`
}

type UpdateBugStatusRequest struct {
	Status string `json:"status"`
}

type CreateComponentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
