package graphqlapi

import (
	"github.com/graphql-go/graphql"

	"github.com/mehrab1899/ats-backend/pkg/kernel"
)

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func stringPtrArg(p graphql.ResolveParams, name string) *string {
	v, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func intPtrArg(p graphql.ResolveParams, name string) *int {
	v, ok := p.Args[name].(int)
	if !ok {
		return nil
	}
	return &v
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func skillListArg(p graphql.ResolveParams, name string) []kernel.Skill {
	raw := stringListArg(p, name)
	out := make([]kernel.Skill, 0, len(raw))
	for _, s := range raw {
		out = append(out, kernel.Skill(s))
	}
	return out
}

func benefitListArg(p graphql.ResolveParams, name string) []kernel.Benefit {
	raw := stringListArg(p, name)
	out := make([]kernel.Benefit, 0, len(raw))
	for _, s := range raw {
		out = append(out, kernel.Benefit(s))
	}
	return out
}

func cursorArgs(p graphql.ResolveParams) kernel.CursorArgs {
	return kernel.CursorArgs{
		First:  intPtrArg(p, "first"),
		After:  stringPtrArg(p, "after"),
		Last:   intPtrArg(p, "last"),
		Before: stringPtrArg(p, "before"),
	}
}

func paginationArgs(p graphql.ResolveParams) kernel.PaginationOptions {
	opts := kernel.PaginationOptions{}
	if page := intPtrArg(p, "page"); page != nil {
		opts.Page = *page
	}
	if size := intPtrArg(p, "pageSize"); size != nil {
		opts.PageSize = *size
	}
	return opts
}

func mergeArgs(groups ...graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	merged := graphql.FieldConfigArgument{}
	for _, group := range groups {
		for name, cfg := range group {
			merged[name] = cfg
		}
	}
	return merged
}
