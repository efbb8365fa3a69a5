package model

// TaskData is the persisted shape of a Task.
type TaskData struct {
	Completed bool   `json:"completed"`
	Content   string `json:"content"`
}

// CollectionData is the persisted shape of a Collection.
type CollectionData struct {
	Title string     `json:"title"`
	Tasks []TaskData `json:"tasks"`
}
