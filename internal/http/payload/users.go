package payload

import (
	"github.com/jellydator/validation"

	"habitd/internal/core"
)

type UserUpdateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (u UserUpdateRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.NilOrNotEmpty, validation.Length(3, 255)),
		validation.Field(&u.Password, validation.NilOrNotEmpty, validation.Length(6, 72)),
	)
}

func (u UserUpdateRequest) ToMessage() core.UserUpdate {
	return core.UserUpdate{
		Username: u.Username,
		Password: u.Password,
	}
}
