package admin

type StatsResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
	TotalSalary    int64 `json:"totalSalary"`
}
