//go:build unit

package user_test

import (
	"testing"

	"library-ledger/internal/domain/user"
	"library-ledger/internal/pkg/errs"
	"library-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithFaceID("face-1").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(1), actual.ID())
		assert.Equal(t, "Gerald Venico", actual.Name())
		assert.Equal(t, user.MembershipStudent, actual.Membership())
		assert.Equal(t, "face-1", actual.FaceID())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "name OK",
				mutate: func(b *builder.UserBuilder) { b.WithName("Francis Polosco") },
			},
			{
				name:   "empty name NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  errs.ErrValidationFailed,
			},
			{
				name:   "blank name NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  errs.ErrValidationFailed,
			},
		})
	})

	t.Run("membership", func(t *testing.T) {
		cases := []struct {
			in   string
			want user.Membership
		}{
			{in: "faculty", want: user.MembershipFaculty},
			{in: " EMPLOYEE ", want: user.MembershipEmployee},
			{in: "", want: user.MembershipGuest},
			{in: "Alumni", want: user.Membership("Alumni")},
		}
		for _, tc := range cases {
			u, err := builder.NewUserBuilder().WithMembership(tc.in).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.Membership(), "input %q", tc.in)
		}
	})
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), user.NextID(nil))
	users := []*user.User{
		user.Reconstruct(4, user.Fields{Name: "a"}),
		user.Reconstruct(2, user.Fields{Name: "b"}),
	}
	assert.Equal(t, int64(5), user.NextID(users))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
