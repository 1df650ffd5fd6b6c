package user

type DeleteInput struct {
	Email string
}

type DeleteOutput struct {
	DeletedTransactions int64
	DeletedFromGroup    bool
}
