package validation

import "strings"

type PostInput struct {
	Text   string `json:"text" form:"text" validate:"required,min=30,max=300"`
	Name   string `json:"name" form:"name"`
	Avatar string `json:"avatar" form:"avatar"`
}

var postMessages = messages{
	"text": {
		"required": "Text field is required",
		"min":      "Post must be between 30 and 300 characters",
		"max":      "Post must be between 30 and 300 characters",
	},
}

// Post validates a new post or comment. Text is measured after trimming,
// which is how it is stored.
func Post(in PostInput) Result {
	in.Text = strings.TrimSpace(in.Text)
	return check(in, postMessages)
}

// ProfileInput is the create-or-edit profile form. Skills arrive as a
// comma-separated list.
type ProfileInput struct {
	Handle         string `json:"handle" form:"handle" validate:"required,min=2,max=40"`
	Company        string `json:"company" form:"company"`
	Website        string `json:"website" form:"website" validate:"omitempty,weburl"`
	Location       string `json:"location" form:"location"`
	Status         string `json:"status" form:"status" validate:"required"`
	Skills         string `json:"skills" form:"skills" validate:"required,skills"`
	Bio            string `json:"bio" form:"bio"`
	GitHubUsername string `json:"githubusername" form:"githubusername"`
	YouTube        string `json:"youtube" form:"youtube" validate:"omitempty,weburl"`
	Twitter        string `json:"twitter" form:"twitter" validate:"omitempty,weburl"`
	Facebook       string `json:"facebook" form:"facebook" validate:"omitempty,weburl"`
	LinkedIn       string `json:"linkedin" form:"linkedin" validate:"omitempty,weburl"`
	Instagram      string `json:"instagram" form:"instagram" validate:"omitempty,weburl"`
}

const invalidURL = "Not a valid URL"

var profileMessages = messages{
	"handle": {
		"required": "Profile handle is required",
		"min":      "Handle needs to be between 2 and 40 characters",
		"max":      "Handle needs to be between 2 and 40 characters",
	},
	"status": {"required": "Status field is required"},
	"skills": {
		"required": "Skills field is required",
		"skills":   "Skills field is required",
	},
	"website":   {"weburl": invalidURL},
	"youtube":   {"weburl": invalidURL},
	"twitter":   {"weburl": invalidURL},
	"facebook":  {"weburl": invalidURL},
	"linkedin":  {"weburl": invalidURL},
	"instagram": {"weburl": invalidURL},
}

func Profile(in ProfileInput) Result {
	in.Handle = strings.TrimSpace(in.Handle)
	in.Status = strings.TrimSpace(in.Status)
	in.Skills = strings.TrimSpace(in.Skills)
	in.Website = strings.TrimSpace(in.Website)
	in.YouTube = strings.TrimSpace(in.YouTube)
	in.Twitter = strings.TrimSpace(in.Twitter)
	in.Facebook = strings.TrimSpace(in.Facebook)
	in.LinkedIn = strings.TrimSpace(in.LinkedIn)
	in.Instagram = strings.TrimSpace(in.Instagram)
	return check(in, profileMessages)
}

type ExperienceInput struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Company     string `json:"company" form:"company" validate:"required"`
	Location    string `json:"location" form:"location"`
	From        string `json:"from" form:"from" validate:"required,isdate"`
	To          string `json:"to" form:"to" validate:"omitempty,isdate"`
	Current     bool   `json:"current" form:"current"`
	Description string `json:"description" form:"description"`
}

var experienceMessages = messages{
	"title":   {"required": "Job title field is required"},
	"company": {"required": "Company field is required"},
	"from": {
		"required": "From date field is required",
		"isdate":   "From date is not a valid date",
	},
	"to": {"isdate": "To date is not a valid date"},
}

func Experience(in ExperienceInput) Result {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.From = strings.TrimSpace(in.From)
	in.To = strings.TrimSpace(in.To)
	return check(in, experienceMessages)
}

type EducationInput struct {
	School       string `json:"school" form:"school" validate:"required"`
	Degree       string `json:"degree" form:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" form:"fieldofstudy" validate:"required"`
	From         string `json:"from" form:"from" validate:"required,isdate"`
	To           string `json:"to" form:"to" validate:"omitempty,isdate"`
	Current      bool   `json:"current" form:"current"`
	Description  string `json:"description" form:"description"`
}

var educationMessages = messages{
	"school":       {"required": "School field is required"},
	"degree":       {"required": "Degree field is required"},
	"fieldofstudy": {"required": "Field of study field is required"},
	"from": {
		"required": "From date field is required",
		"isdate":   "From date is not a valid date",
	},
	"to": {"isdate": "To date is not a valid date"},
}

func Education(in EducationInput) Result {
	in.School = strings.TrimSpace(in.School)
	in.Degree = strings.TrimSpace(in.Degree)
	in.FieldOfStudy = strings.TrimSpace(in.FieldOfStudy)
	in.From = strings.TrimSpace(in.From)
	in.To = strings.TrimSpace(in.To)
	return check(in, educationMessages)
}

type RegisterInput struct {
	Name      string `json:"name" form:"name" validate:"required,min=2,max=30"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=6,max=30"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password"`
}

var registerMessages = messages{
	"name": {
		"required": "Name field is required",
		"min":      "Name must be between 2 and 30 characters",
		"max":      "Name must be between 2 and 30 characters",
	},
	"email": {
		"required": "Email field is required",
		"email":    "Email is invalid",
	},
	"password": {
		"required": "Password field is required",
		"min":      "Password must be between 6 and 30 characters",
		"max":      "Password must be between 6 and 30 characters",
	},
	"password2": {
		"required": "Confirm password field is required",
		"eqfield":  "Passwords must match",
	},
}

func Register(in RegisterInput) Result {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Password = blank(in.Password)
	in.Password2 = blank(in.Password2)
	return check(in, registerMessages)
}

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

var loginMessages = messages{
	"email": {
		"required": "Email field is required",
		"email":    "Email is invalid",
	},
	"password": {"required": "Password field is required"},
}

func Login(in LoginInput) Result {
	in.Email = strings.TrimSpace(in.Email)
	in.Password = blank(in.Password)
	return check(in, loginMessages)
}
