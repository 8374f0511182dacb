package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"short", "short", "Post must be between 30 and 300 characters"},
		{"empty", "", "Text field is required"},
		{"whitespace only", "    ", "Text field is required"},
		{"lower bound", strings.Repeat("a", 30), ""},
		{"thirty two", strings.Repeat("b", 32), ""},
		{"upper bound", strings.Repeat("c", 300), ""},
		{"too long", strings.Repeat("d", 301), "Post must be between 30 and 300 characters"},
		{"multibyte counted as runes", strings.Repeat("é", 30), ""},
		{"padding does not count", strings.Repeat(" ", 10) + strings.Repeat("x", 25), "Post must be between 30 and 300 characters"},
		{"padded but long enough", " " + strings.Repeat("x", 30) + "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Post(PostInput{Text: tt.text})
			if tt.wantErr == "" {
				assert.True(t, res.IsValid)
				assert.Empty(t, res.Errors)
				return
			}
			assert.False(t, res.IsValid)
			assert.Equal(t, map[string]string{"text": tt.wantErr}, res.Errors)
		})
	}
}

func validProfile() ProfileInput {
	return ProfileInput{
		Handle: "ada",
		Status: "Developer",
		Skills: "go,sql",
	}
}

func TestProfile(t *testing.T) {
	t.Run("minimal valid", func(t *testing.T) {
		res := Profile(validProfile())
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("missing required fields", func(t *testing.T) {
		res := Profile(ProfileInput{})
		assert.False(t, res.IsValid)
		assert.Equal(t, map[string]string{
			"handle": "Profile handle is required",
			"status": "Status field is required",
			"skills": "Skills field is required",
		}, res.Errors)
	})

	t.Run("handle length", func(t *testing.T) {
		in := validProfile()
		in.Handle = "a"
		assert.Equal(t, "Handle needs to be between 2 and 40 characters", Profile(in).Errors["handle"])

		in.Handle = strings.Repeat("h", 41)
		assert.Equal(t, "Handle needs to be between 2 and 40 characters", Profile(in).Errors["handle"])

		in.Handle = strings.Repeat("h", 40)
		assert.True(t, Profile(in).IsValid)
	})

	t.Run("urls accepted with and without scheme", func(t *testing.T) {
		in := validProfile()
		in.Website = "example.com"
		in.YouTube = "https://youtube.com/c/ada"
		in.Twitter = "http://twitter.com/ada"
		in.Facebook = "facebook.com/ada"
		in.LinkedIn = "https://linkedin.com/in/ada"
		in.Instagram = "instagram.com/ada"
		res := Profile(in)
		assert.True(t, res.IsValid, res.Errors)
	})

	t.Run("each url field checked on its own value", func(t *testing.T) {
		in := validProfile()
		in.Website = "https://example.com"
		in.LinkedIn = "not a url"
		res := Profile(in)
		assert.False(t, res.IsValid)
		assert.Equal(t, map[string]string{"linkedin": "Not a valid URL"}, res.Errors)
	})

	t.Run("handle measured after trimming", func(t *testing.T) {
		in := validProfile()
		in.Handle = " a "
		assert.Equal(t, "Handle needs to be between 2 and 40 characters", Profile(in).Errors["handle"])
	})

	t.Run("skills must name at least one skill", func(t *testing.T) {
		in := validProfile()
		in.Skills = " , ,,"
		res := Profile(in)
		assert.False(t, res.IsValid)
		assert.Equal(t, map[string]string{"skills": "Skills field is required"}, res.Errors)
	})

	t.Run("blank optional url is ignored", func(t *testing.T) {
		in := validProfile()
		in.Website = "   "
		assert.True(t, Profile(in).IsValid)
	})
}

func TestExperience(t *testing.T) {
	res := Experience(ExperienceInput{})
	assert.False(t, res.IsValid)
	assert.Equal(t, map[string]string{
		"title":   "Job title field is required",
		"company": "Company field is required",
		"from":    "From date field is required",
	}, res.Errors)

	res = Experience(ExperienceInput{Title: "Engineer", Company: "Acme", From: "yesterday", To: "2020-13-01"})
	assert.Equal(t, map[string]string{
		"from": "From date is not a valid date",
		"to":   "To date is not a valid date",
	}, res.Errors)

	res = Experience(ExperienceInput{Title: "Engineer", Company: "Acme", From: "2019-01-02", To: "2021-06-30T00:00:00Z"})
	assert.True(t, res.IsValid)
}

func TestEducation(t *testing.T) {
	res := Education(EducationInput{From: "2010-09-01"})
	assert.False(t, res.IsValid)
	assert.Equal(t, map[string]string{
		"school":       "School field is required",
		"degree":       "Degree field is required",
		"fieldofstudy": "Field of study field is required",
	}, res.Errors)

	res = Education(EducationInput{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2010-09-01", Current: true})
	assert.True(t, res.IsValid)
}

func TestRegister(t *testing.T) {
	res := Register(RegisterInput{Name: "A", Email: "nope", Password: "123", Password2: "456"})
	assert.False(t, res.IsValid)
	assert.Equal(t, map[string]string{
		"name":      "Name must be between 2 and 30 characters",
		"email":     "Email is invalid",
		"password":  "Password must be between 6 and 30 characters",
		"password2": "Passwords must match",
	}, res.Errors)

	res = Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret1", Password2: "secret1"})
	assert.True(t, res.IsValid)
}

func TestLogin(t *testing.T) {
	res := Login(LoginInput{})
	assert.Equal(t, map[string]string{
		"email":    "Email field is required",
		"password": "Password field is required",
	}, res.Errors)

	assert.True(t, Login(LoginInput{Email: "ada@example.com", Password: "x"}).IsValid)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"go", "sql", "docker"}, SplitSkills("go, sql,,docker"))
	assert.Empty(t, SplitSkills(" , ,"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2019-01-02")
	assert.NoError(t, err)
	assert.Equal(t, 2019, d.Year())

	_, err = ParseDate("02/01/2019")
	assert.Error(t, err)
}
