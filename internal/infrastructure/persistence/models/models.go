package models

// All returns every persistence model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PackageModel{},
		&PropertyModel{},
		&OrderModel{},
		&ChatModel{},
		&MessageModel{},
	}
}
