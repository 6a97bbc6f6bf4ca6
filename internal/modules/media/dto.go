package media

type UploadForm struct {
	MediaType    string `form:"media_type" binding:"required"`
	DisplayOrder int    `form:"display_order"`
}

type UpdateRequest struct {
	MediaType    *string `json:"media_type,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}
