package domain

// Team representa uma equipe cadastrada. O nome é a chave natural.
type Team struct {
	Name string `json:"equipe"`
}

// User representa um usuário vinculado a uma equipe. O email é a chave natural;
// a equipe é uma referência textual (não validada pelo armazenamento).
type User struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Team  string `json:"equipe"`
}
