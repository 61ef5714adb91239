package models

import "time"

// DataRequestModel is the data_request table. Timestamps are managed by the
// domain, so gorm's automatic time tracking is off.
type DataRequestModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"size:16;not null;default:open;index"`
	UserID      string    `gorm:"size:36;not null;index"`
	CreatedAt   time.Time `gorm:"precision:6;not null;autoCreateTime:false;index:idx_data_request_order,priority:1"`
	UpdatedAt   time.Time `gorm:"precision:6;not null;autoUpdateTime:false"`
	CreatedSeq  int64     `gorm:"not null;default:0;index:idx_data_request_order,priority:2"`

	Comments []DataRequestCommentModel `gorm:"foreignKey:DataRequestID;references:ID;constraint:OnDelete:CASCADE"`
}

func (DataRequestModel) TableName() string {
	return "data_request"
}

// DataRequestCommentModel is the data_request_comment table. Rows are removed
// together with their parent request.
type DataRequestCommentModel struct {
	ID            string    `gorm:"primaryKey;size:36"`
	DataRequestID string    `gorm:"size:36;not null;index:idx_data_request_comment_order,priority:1"`
	UserID        string    `gorm:"size:36;not null;index"`
	Content       string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"precision:6;not null;autoCreateTime:false;index:idx_data_request_comment_order,priority:2"`
	CreatedSeq    int64     `gorm:"not null;default:0;index:idx_data_request_comment_order,priority:3"`
}

func (DataRequestCommentModel) TableName() string {
	return "data_request_comment"
}
