package repository

import "context"

// RepositoryFactory hands out repositories bound to a single transaction.
// Repositories created from the same factory share the same transaction
// session, so writes across them commit or roll back together.
type RepositoryFactory interface {
	UserRepo() UserRepository
	CategoryRepo() CategoryRepository
	ProductRepo() ProductRepository
	ReviewRepo() ReviewRepository
	OrderRepo() OrderRepository
	MessageRepo() MessageRepository
}

// TransactionManager runs a unit of work inside a database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
