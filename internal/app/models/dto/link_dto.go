package dto

// CreateLinkRequest is the JSON body of POST /v1/course_link/{course_id}
type CreateLinkRequest struct {
	Title string `json:"title" binding:"required" example:"Course playlist"`
	URL   string `json:"url" binding:"required,url" example:"https://youtube.com/playlist?list=abc"`
}
