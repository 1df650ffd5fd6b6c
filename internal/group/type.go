package group

import "ledgerly-api/internal/model"

type CreateInput struct {
	Name         string
	MemberEmails []string
}

type MembersInput struct {
	Name   string
	Emails []string
}

// GroupOutput is the result of a membership-changing operation. The slices
// report the emails that could not be processed and why.
type GroupOutput struct {
	Group           model.Group
	AlreadyInGroup  []model.Member
	MembersNotFound []model.Member
	NotInGroup      []model.Member
}
