package model

// All lists every model in dependency order, used for migrations and code generation.
func All() []any {
	return []any{
		&AppModel{},
		&AdministratorModel{},
		&UserModel{},
		&DeviceTokenModel{},
		&NotificationModel{},
	}
}
