package notice

type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content"`
	Date    string `json:"date" binding:"required"`
}

type NoticeResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

func mapToResponse(n Notice) NoticeResponse {
	return NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Date:      n.Date.Format("2006-01-02"),
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(notices []Notice) []NoticeResponse {
	res := make([]NoticeResponse, len(notices))
	for i, n := range notices {
		res[i] = mapToResponse(n)
	}
	return res
}
