// Package graphqlapi exposes the recruitment surface over GraphQL: a runtime
// schema built with graphql-go, resolvers delegating to the domain services,
// and a fiber handler speaking both JSON and the multipart request spec.
package graphqlapi

import (
	"github.com/graphql-go/graphql"

	"github.com/mehrab1899/ats-backend/pkg/iam/admin"
	"github.com/mehrab1899/ats-backend/pkg/iam/admin/adminsrv"
	"github.com/mehrab1899/ats-backend/pkg/kernel"
	"github.com/mehrab1899/ats-backend/recruitment/analytics/analyticssrv"
	"github.com/mehrab1899/ats-backend/recruitment/applicant"
	"github.com/mehrab1899/ats-backend/recruitment/applicant/applicantsrv"
	"github.com/mehrab1899/ats-backend/recruitment/job"
	"github.com/mehrab1899/ats-backend/recruitment/job/jobsrv"
)

// Resolver bundles the services the schema delegates to.
type Resolver struct {
	Admins     *adminsrv.AdminService
	Jobs       *jobsrv.JobService
	Applicants *applicantsrv.ApplicantService
	Analytics  *analyticssrv.AnalyticsService
}

// NewSchema builds the executable schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}

var cursorArgsConfig = graphql.FieldConfigArgument{
	"first":  &graphql.ArgumentConfig{Type: graphql.Int},
	"after":  &graphql.ArgumentConfig{Type: graphql.String},
	"last":   &graphql.ArgumentConfig{Type: graphql.Int},
	"before": &graphql.ArgumentConfig{Type: graphql.String},
}

func (r *Resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"publicJobs": &graphql.Field{
				Type: graphql.NewNonNull(jobConnectionType),
				Args: cursorArgsConfig,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Jobs.ListPublicJobs(p.Context, cursorArgs(p))
				},
			},
			"jobs": &graphql.Field{
				Type: graphql.NewNonNull(adminJobListType),
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"status":   &graphql.ArgumentConfig{Type: graphql.String},
					"page":     &graphql.ArgumentConfig{Type: graphql.Int},
					"pageSize": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Jobs.ListJobs(p.Context, stringArg(p, "search"), stringArg(p, "status"), paginationArgs(p))
				},
			},
			"getJobById": &graphql.Field{
				Type: graphql.NewNonNull(jobType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Jobs.GetJobByID(p.Context, stringArg(p, "id"))
				},
			},
			"applicants": &graphql.Field{
				Type: graphql.NewNonNull(applicantConnectionType),
				Args: mergeArgs(cursorArgsConfig, graphql.FieldConfigArgument{
					"search": &graphql.ArgumentConfig{Type: graphql.String},
					"stage":  &graphql.ArgumentConfig{Type: graphql.String},
				}),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Applicants.ListApplicants(p.Context, stringArg(p, "search"), stringArg(p, "stage"), cursorArgs(p))
				},
			},
			"getApplicantById": &graphql.Field{
				Type: graphql.NewNonNull(applicantType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Applicants.GetApplicantByID(p.Context, stringArg(p, "id"))
				},
			},
			"dashboardStats": &graphql.Field{
				Type: graphql.NewNonNull(dashboardStatsType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Analytics.DashboardStats(p.Context)
				},
			},
			"monthlyTrends": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(monthlyStatsType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Analytics.MonthlyTrends(p.Context)
				},
			},
		},
	})
}

func (r *Resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Admins.Signup(p.Context, admin.SignupRequest{
						Email:     kernel.Email(stringArg(p, "email")),
						Password:  stringArg(p, "password"),
						FirstName: kernel.FirstName(stringArg(p, "firstName")),
						LastName:  kernel.LastName(stringArg(p, "lastName")),
					})
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Admins.Login(p.Context, admin.LoginRequest{
						Email:    kernel.Email(stringArg(p, "email")),
						Password: stringArg(p, "password"),
					})
				},
			},
			"createJob": &graphql.Field{
				Type: graphql.NewNonNull(jobType),
				Args: graphql.FieldConfigArgument{
					"title":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"status":         &graphql.ArgumentConfig{Type: graphql.String},
					"jobType":        &graphql.ArgumentConfig{Type: graphql.String},
					"skillsRequired": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
					"benefits":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Jobs.CreateJob(p.Context, job.CreateJobRequest{
						Title:          kernel.JobTitle(stringArg(p, "title")),
						Description:    kernel.JobDescription(stringArg(p, "description")),
						Status:         stringPtrArg(p, "status"),
						Type:           stringPtrArg(p, "jobType"),
						SkillsRequired: skillListArg(p, "skillsRequired"),
						Benefits:       benefitListArg(p, "benefits"),
					})
				},
			},
			"updateJob": &graphql.Field{
				Type: graphql.NewNonNull(jobType),
				Args: graphql.FieldConfigArgument{
					"id":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":          &graphql.ArgumentConfig{Type: graphql.String},
					"description":    &graphql.ArgumentConfig{Type: graphql.String},
					"status":         &graphql.ArgumentConfig{Type: graphql.String},
					"jobType":        &graphql.ArgumentConfig{Type: graphql.String},
					"skillsRequired": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
					"benefits":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := job.UpdateJobRequest{
						Status: stringPtrArg(p, "status"),
						Type:   stringPtrArg(p, "jobType"),
					}
					if t := stringPtrArg(p, "title"); t != nil {
						title := kernel.JobTitle(*t)
						req.Title = &title
					}
					if d := stringPtrArg(p, "description"); d != nil {
						desc := kernel.JobDescription(*d)
						req.Description = &desc
					}
					if _, ok := p.Args["skillsRequired"]; ok {
						skills := skillListArg(p, "skillsRequired")
						req.SkillsRequired = &skills
					}
					if _, ok := p.Args["benefits"]; ok {
						benefits := benefitListArg(p, "benefits")
						req.Benefits = &benefits
					}
					return r.Jobs.UpdateJob(p.Context, stringArg(p, "id"), req)
				},
			},
			"updateJobStatus": &graphql.Field{
				Type: graphql.NewNonNull(jobType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Jobs.UpdateJobStatus(p.Context, stringArg(p, "id"), stringArg(p, "status"))
				},
			},
			"submitApplicationText": &graphql.Field{
				Type: graphql.NewNonNull(applicantType),
				Args: graphql.FieldConfigArgument{
					"jobId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"firstName":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lastName":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"phone":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"message":     &graphql.ArgumentConfig{Type: graphql.String},
					"cv":          &graphql.ArgumentConfig{Type: uploadScalar},
					"coverLetter": &graphql.ArgumentConfig{Type: uploadScalar},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cv, _ := p.Args["cv"].(*applicant.Upload)
					coverLetter, _ := p.Args["coverLetter"].(*applicant.Upload)
					return r.Applicants.SubmitApplication(p.Context, applicant.SubmitApplicationRequest{
						JobID:     stringArg(p, "jobId"),
						FirstName: kernel.FirstName(stringArg(p, "firstName")),
						LastName:  kernel.LastName(stringArg(p, "lastName")),
						Email:     kernel.Email(stringArg(p, "email")),
						Phone:     kernel.Phone(stringArg(p, "phone")),
						Message:   stringPtrArg(p, "message"),
					}, cv, coverLetter)
				},
			},
			"updateApplicantStage": &graphql.Field{
				Type: graphql.NewNonNull(applicantType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"stage": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Applicants.UpdateApplicantStage(p.Context, stringArg(p, "id"), stringArg(p, "stage"))
				},
			},
		},
	})
}
