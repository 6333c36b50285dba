package repository

import "context"

// トランザクション内で使うrepo一式
type TxRepos interface {
	Orders() OrderRepository
	Pricing() PricingRepository
	ProductTypes() ProductTypeRepository
	Users() UserRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがnilを返せばcommit、errorを返すか panicすればrollback。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
