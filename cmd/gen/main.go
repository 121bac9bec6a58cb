package main

import (
	"chorechart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.UserDeviceModel{},
		model.ChoreModel{},
		model.ChoreCompletionModel{},
		model.RewardModel{},
		model.RedemptionModel{},
		model.BehaviorLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
