package payload

import (
	"github.com/jellydator/validation"

	"habitd/internal/core"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a RegisterRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(3, 255)),
		validation.Field(&a.Password, validation.Required, validation.Length(6, 72)),
	)
}

func (a RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a LoginRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (a RefreshRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.RefreshToken, validation.Required),
	)
}
