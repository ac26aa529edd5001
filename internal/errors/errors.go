package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
)

// User-facing response messages.
const (
	MsgWelcome = "Bem vindo a API!"

	MsgNameRequired     = "Nome é obrigatório !"
	MsgEmailRequired    = "E-mail é obrigatório !"
	MsgPasswordRequired = "Senha é obrigatória !"
	MsgPasswordMismatch = "Senha e a confirmação precisam ser iguais !"
	MsgEmailTaken       = "E-mail ja cadastrado, utilize outro e-mail !"
	MsgUserCreated      = "Usuário criado com sucesso!"

	MsgLoginEmailRequired    = "O email é obrigatório!"
	MsgLoginPasswordRequired = "A senha é obrigatória!"
	MsgUserNotFound          = "Usuário não encontrado!"
	MsgWrongPassword         = "Senha inválida"
	MsgLoginOK               = "Autenticação realizada com sucesso!"

	MsgAccessDenied = "Acesso negado!"
	MsgInvalidToken = "O Token é inválido!"
)

// MsgResponse is the response envelope used for every message-only body.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// MapErrorToHTTP maps domain errors to a status code and response message.
// Unrecognized errors become a 500 whose body carries the error text.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, MsgUserNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusUnprocessableEntity, MsgEmailTaken
	case errors.Is(err, ErrWrongPassword):
		return http.StatusUnprocessableEntity, MsgWrongPassword
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
