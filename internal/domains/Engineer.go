package domains

type Engineer struct {
	ID    int64  `db:"id" json:"id"`
	EngID string `db:"eng_id" json:"eng_id"`
	Name  string `db:"name" json:"name"`
}
