package catalog

type CreateMasterRequest struct {
	Title       string `json:"title" binding:"required,min=2"`
	Description string `json:"description"`
}

type UpdateMasterRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ListQuery struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
