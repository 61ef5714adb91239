package models

// All returns every persisted model, parents before children.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&DataRequestModel{},
		&DataRequestCommentModel{},
	}
}

// TableNames lists the tables the schema manager must see after setup.
func TableNames() []string {
	return []string{
		UserModel{}.TableName(),
		DataRequestModel{}.TableName(),
		DataRequestCommentModel{}.TableName(),
	}
}
