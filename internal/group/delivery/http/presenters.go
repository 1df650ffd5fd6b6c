package http

import (
	"ledgerly-api/internal/group"
	"ledgerly-api/internal/model"
)

type memberResp struct {
	Email string `json:"email"`
}

type groupResp struct {
	Name    string       `json:"name"`
	Members []memberResp `json:"members"`
}

func newGroupResp(g model.Group) groupResp {
	members := make([]memberResp, len(g.Members))
	for i, m := range g.Members {
		members[i] = memberResp{Email: m.Email}
	}
	return groupResp{
		Name:    g.Name,
		Members: members,
	}
}

func newListResp(grps []model.Group) []groupResp {
	res := make([]groupResp, len(grps))
	for i, g := range grps {
		res[i] = newGroupResp(g)
	}
	return res
}

func newMemberList(ms []model.Member) []memberResp {
	res := make([]memberResp, len(ms))
	for i, m := range ms {
		res[i] = memberResp{Email: m.Email}
	}
	return res
}

type createReq struct {
	Name         string   `json:"name"`
	MemberEmails []string `json:"memberEmails"`
}

func (r createReq) validate() error {
	if r.Name == "" || len(r.MemberEmails) == 0 {
		return group.ErrMissingParameters
	}
	return nil
}

func newCreateInput(r createReq) group.CreateInput {
	return group.CreateInput{
		Name:         r.Name,
		MemberEmails: r.MemberEmails,
	}
}

type createResp struct {
	Group           groupResp    `json:"group"`
	MembersNotFound []memberResp `json:"membersNotFound"`
	AlreadyInGroup  []memberResp `json:"alreadyInGroup"`
}

type membersReq struct {
	Emails []string `json:"emails"`
}

func (r membersReq) validate(name string) error {
	if name == "" || len(r.Emails) == 0 {
		return group.ErrMissingBodyAttrs
	}
	return nil
}

type addResp struct {
	Group           groupResp    `json:"group"`
	MembersNotFound []memberResp `json:"membersNotFound"`
	AlreadyInGroup  []memberResp `json:"alreadyInGroup"`
}

type removeResp struct {
	Group           groupResp    `json:"group"`
	MembersNotFound []memberResp `json:"membersNotFound"`
	NotInGroup      []memberResp `json:"notInGroup"`
}

type deleteReq struct {
	Name *string `json:"name"`
}

func (r deleteReq) validate() error {
	if r.Name == nil {
		return group.ErrMissingName
	}
	if *r.Name == "" {
		return group.ErrEmptyName
	}
	return nil
}

type messageResp struct {
	Message string `json:"message"`
}
