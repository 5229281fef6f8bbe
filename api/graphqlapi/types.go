package graphqlapi

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/mehrab1899/ats-backend/pkg/iam/admin"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/recruitment/analytics"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
	"github.com/mehrab1899/ats-backend/recruitment/job"
)

var jobStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "JobStatus",
	Values: graphql.EnumValueConfigMap{
		"OPEN":   &graphql.EnumValueConfig{Value: "OPEN"},
		"CLOSED": &graphql.EnumValueConfig{Value: "CLOSED"},
		"DRAFT":  &graphql.EnumValueConfig{Value: "DRAFT"},
	},
})

var jobTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "JobType",
	Values: graphql.EnumValueConfigMap{
		"FULL_TIME": &graphql.EnumValueConfig{Value: "FULL_TIME"},
		"PART_TIME": &graphql.EnumValueConfig{Value: "PART_TIME"},
		"CONTRACT":  &graphql.EnumValueConfig{Value: "CONTRACT"},
	},
})

var stageEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Stage",
	Values: graphql.EnumValueConfigMap{
		"APPLIED":     &graphql.EnumValueConfig{Value: "APPLIED"},
		"SHORTLISTED": &graphql.EnumValueConfig{Value: "SHORTLISTED"},
		"INTERVIEWED": &graphql.EnumValueConfig{Value: "INTERVIEWED"},
		"HIRED":       &graphql.EnumValueConfig{Value: "HIRED"},
		"REJECTED":    &graphql.EnumValueConfig{Value: "REJECTED"},
	},
})

// uploadScalar carries multipart files into resolver arguments. The handler
// injects *applicant.Upload values into variables; the scalar passes them
// through coercion untouched.
var uploadScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Upload",
	Description: "A file delivered via the GraphQL multipart request spec.",
	Serialize:   func(value interface{}) interface{} { return nil },
	ParseValue:  func(value interface{}) interface{} { return value },
	ParseLiteral: func(valueAST ast.Value) interface{} {
		return nil
	},
})

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"hasNextPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.PageInfo).HasNextPage, nil
			},
		},
		"hasPreviousPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.PageInfo).HasPreviousPage, nil
			},
		},
		"startCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.PageInfo).StartCursor, nil
			},
		},
		"endCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.PageInfo).EndCursor, nil
			},
		},
	},
})

func jobSource(p graphql.ResolveParams) job.Response {
	switch v := p.Source.(type) {
	case job.Response:
		return v
	case *job.Response:
		return *v
	}
	return job.Response{}
}

var jobType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Job",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return jobSource(p).ID, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(jobSource(p).Title), nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(jobSource(p).Description), nil
			},
		},
		"status": &graphql.Field{
			Type: graphql.NewNonNull(jobStatusEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(jobSource(p).Status), nil
			},
		},
		"jobType": &graphql.Field{
			Type: graphql.NewNonNull(jobTypeEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(jobSource(p).Type), nil
			},
		},
		"skillsRequired": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				src := jobSource(p)
				skills := make([]string, 0, len(src.SkillsRequired))
				for _, s := range src.SkillsRequired {
					skills = append(skills, string(s))
				}
				return skills, nil
			},
		},
		"benefits": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				src := jobSource(p)
				benefits := make([]string, 0, len(src.Benefits))
				for _, b := range src.Benefits {
					benefits = append(benefits, string(b))
				}
				return benefits, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return jobSource(p).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return jobSource(p).UpdatedAt, nil
			},
		},
	},
})

var jobEdgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "JobEdge",
	Fields: graphql.Fields{
		"node": &graphql.Field{
			Type: graphql.NewNonNull(jobType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.Edge[job.Response]).Node, nil
			},
		},
		"cursor": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.Edge[job.Response]).Cursor, nil
			},
		},
	},
})

var jobConnectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "JobConnection",
	Fields: graphql.Fields{
		"edges": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(jobEdgeType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*job.PublicConnection).Edges, nil
			},
		},
		"pageInfo": &graphql.Field{
			Type: graphql.NewNonNull(pageInfoType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*job.PublicConnection).PageInfo, nil
			},
		},
		"totalCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*job.PublicConnection).TotalCount, nil
			},
		},
	},
})

var adminJobType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AdminJob",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(job.AdminRowResponse).ID, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(job.AdminRowResponse).Title), nil
			},
		},
		"status": &graphql.Field{
			Type: graphql.NewNonNull(jobStatusEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(job.AdminRowResponse).Status), nil
			},
		},
		"jobType": &graphql.Field{
			Type: graphql.NewNonNull(jobTypeEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(job.AdminRowResponse).Type), nil
			},
		},
		"applicantCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(job.AdminRowResponse).ApplicantCount, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(job.AdminRowResponse).CreatedAt, nil
			},
		},
	},
})

var adminJobListType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AdminJobList",
	Fields: graphql.Fields{
		"rows": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(adminJobType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*job.AdminListResponse).Rows, nil
			},
		},
		"totalCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*job.AdminListResponse).TotalCount, nil
			},
		},
	},
})

var applicantRowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ApplicantRow",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(applicant.RowResponse).ID, nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(applicant.RowResponse).FirstName), nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(applicant.RowResponse).LastName), nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(applicant.RowResponse).Email), nil
			},
		},
		"stage": &graphql.Field{
			Type: graphql.NewNonNull(stageEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(applicant.RowResponse).Stage), nil
			},
		},
		"appliedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(applicant.RowResponse).AppliedAt, nil
			},
		},
		"jobTitle": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(applicant.RowResponse).JobTitle), nil
			},
		},
	},
})

var applicantEdgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ApplicantEdge",
	Fields: graphql.Fields{
		"node": &graphql.Field{
			Type: graphql.NewNonNull(applicantRowType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.Edge[applicant.RowResponse]).Node, nil
			},
		},
		"cursor": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(kernel.Edge[applicant.RowResponse]).Cursor, nil
			},
		},
	},
})

var applicantConnectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ApplicantConnection",
	Fields: graphql.Fields{
		"edges": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(applicantEdgeType))),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*applicant.Connection).Edges, nil
			},
		},
		"pageInfo": &graphql.Field{
			Type: graphql.NewNonNull(pageInfoType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*applicant.Connection).PageInfo, nil
			},
		},
		"totalCount": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*applicant.Connection).TotalCount, nil
			},
		},
	},
})

var jobSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "JobSummary",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(applicant.JobSummary).ID, nil
			},
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(applicant.JobSummary).Title), nil
			},
		},
	},
})

func applicantSource(p graphql.ResolveParams) *applicant.Response {
	if v, ok := p.Source.(*applicant.Response); ok {
		return v
	}
	return &applicant.Response{}
}

var applicantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Applicant",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return applicantSource(p).ID, nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).FirstName), nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).LastName), nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).Email), nil
			},
		},
		"phone": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).Phone), nil
			},
		},
		"stage": &graphql.Field{
			Type: graphql.NewNonNull(stageEnum),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).Stage), nil
			},
		},
		"cvUrl": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).CVURL), nil
			},
		},
		"coverLetterUrl": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(applicantSource(p).CoverLetterURL), nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return applicantSource(p).Message, nil
			},
		},
		"appliedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return applicantSource(p).AppliedAt, nil
			},
		},
		"job": &graphql.Field{
			Type: graphql.NewNonNull(jobSummaryType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return applicantSource(p).Job, nil
			},
		},
	},
})

var dashboardStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardStats",
	Fields: graphql.Fields{
		"openJobs": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*analytics.DashboardStats).OpenJobs, nil
			},
		},
		"totalApplicants": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*analytics.DashboardStats).TotalApplicants, nil
			},
		},
		"shortlisted": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*analytics.DashboardStats).Shortlisted, nil
			},
		},
		"topJob": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*analytics.DashboardStats).TopJob, nil
			},
		},
	},
})

var monthlyStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MonthlyStats",
	Fields: graphql.Fields{
		"month": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(analytics.MonthlyStats).Month, nil
			},
		},
		"jobs": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(analytics.MonthlyStats).Jobs, nil
			},
		},
		"applicants": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(analytics.MonthlyStats).Applicants, nil
			},
		},
		"hired": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(analytics.MonthlyStats).Hired, nil
			},
		},
	},
})

var adminType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Admin",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(admin.AdminResponse).ID.String(), nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(admin.AdminResponse).Email), nil
			},
		},
		"firstName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(admin.AdminResponse).FirstName), nil
			},
		},
		"lastName": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return string(p.Source.(admin.AdminResponse).LastName), nil
			},
		},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"token": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*admin.AuthResponse).Token, nil
			},
		},
		"admin": &graphql.Field{
			Type: graphql.NewNonNull(adminType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*admin.AuthResponse).Admin, nil
			},
		},
	},
})
