package form

type LoginRequest struct {
	Username string `json:"username" valid:"required"`
	Password string `json:"password" valid:"required"`
}

func (r *LoginRequest) Validate() error {
	return ValidateStruct(r, nil)
}
