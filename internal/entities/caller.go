package entities

// Caller — проверенная личность вызывающего из внешнего identity-провайдера.
// Сервис доверяет этим полям как есть и сам учетные данные не проверяет.
type Caller struct {
	ID    string
	Admin bool
}

func (c Caller) IsAuthenticated() bool {
	return c.ID != ""
}

// ActorRole вычисляется заново на каждую проверку и никогда не хранится.
type ActorRole string

const (
	RoleAdmin     ActorRole = "admin"
	RoleBuyer     ActorRole = "buyer"
	RoleSeller    ActorRole = "seller"
	RoleUnrelated ActorRole = "unrelated"
)

func (r ActorRole) String() string {
	return string(r)
}
