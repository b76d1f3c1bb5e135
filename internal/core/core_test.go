package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"habitd/internal/core"
	"habitd/internal/core/fake"
	"habitd/internal/repository"
	tokenIssuer "habitd/pkg/jwt"
)

var _ = Describe("HabitTracker", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		tracker *core.HabitTracker

		hashedPassword string
		genToken       *jwt.Token
		fakeErr        error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		tracker = core.NewHabitTracker(fakeLogger, fakeRepo, fakeJWT, 30*time.Minute, 7*24*time.Hour)

		hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
		genToken = jwt.New(jwt.SigningMethodHS256)
		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			user, err = tracker.Register(ctx, msg)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = func(_ context.Context, u repository.User) (repository.User, error) {
					u.ID = 7
					u.CreatedAt = time.Now()
					return u, nil
				}
			})

			It("should create a non-admin user with a hashed password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal("alice"))
				Expect(user.IsAdmin).To(BeFalse())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Username).To(Equal("alice"))
				Expect(argUser.IsAdmin).To(BeFalse())
				Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("testpass"))).To(Succeed())
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrDuplicate)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg    core.LoginMessage
			tokens core.TokenPair
			err    error
		)

		BeforeEach(func() {
			msg = core.LoginMessage{
				Username: "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			tokens, err = tracker.Login(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturnsOnCall(0, "signed.access", nil)
				fakeJWT.SignReturnsOnCall(1, "signed.refresh", nil)
			})

			It("should return an access/refresh token pair", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tokens.AccessToken).To(Equal("signed.access"))
				Expect(tokens.RefreshToken).To(Equal("signed.refresh"))
				Expect(tokens.TokenType).To(Equal("bearer"))
				Expect(tokens.ExpiresAt).To(BeTemporally("~", time.Now().Add(30*time.Minute), time.Minute))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("alice"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(2))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					Subject:    "7",
					UserName:   "alice",
					TokenType:  tokenIssuer.TypeAccess,
					Expiration: 30 * time.Minute,
				}))
				Expect(fakeJWT.GenerateArgsForCall(1)).To(Equal(tokenIssuer.TokenInfo{
					Subject:    "7",
					UserName:   "alice",
					TokenType:  tokenIssuer.TypeRefresh,
					Expiration: 7 * 24 * time.Hour,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(2))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrNotFound)
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)
				msg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     "alice",
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		var (
			token  string
			caller core.UserRecord
			err    error
		)

		BeforeEach(func() {
			token = "valid.token"
		})

		JustBeforeEach(func() {
			caller, err = tracker.Authorize(ctx, token)
		})

		When("the access token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":  "7",
					"type": tokenIssuer.TypeAccess,
				}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{
					ID:       7,
					Username: "alice",
				}, nil)
			})

			It("should resolve the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(caller.ID).To(Equal(uint(7)))
				Expect(caller.Username).To(Equal("alice"))

				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))
				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(1))
				_, argID := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("the token fails validation", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("a refresh token is presented", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":  "7",
					"type": tokenIssuer.TypeRefresh,
				}, nil)
			})

			It("should return invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(0))
			})
		})

		When("the subject is not numeric", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":  "not-a-number",
					"type": tokenIssuer.TypeAccess,
				}, nil)
			})

			It("should return invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("the user no longer exists", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":  "7",
					"type": tokenIssuer.TypeAccess,
				}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrNotFound)
			})

			It("should return invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})
	})

	Describe("Refresh", func() {
		var (
			tokens core.TokenPair
			err    error
		)

		JustBeforeEach(func() {
			tokens, err = tracker.Refresh(ctx, "refresh.token")
		})

		When("the refresh token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":  "7",
					"type": tokenIssuer.TypeRefresh,
				}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{ID: 7, Username: "alice"}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturnsOnCall(0, "new.access", nil)
				fakeJWT.SignReturnsOnCall(1, "new.refresh", nil)
			})

			It("should issue a fresh token pair", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tokens.AccessToken).To(Equal("new.access"))
				Expect(tokens.RefreshToken).To(Equal("new.refresh"))
			})
		})

		When("an access token is presented", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":  "7",
					"type": tokenIssuer.TypeAccess,
				}, nil)
			})

			It("should return invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})
	})

	Describe("EnsureAdmin", func() {
		var err error

		When("credentials are configured", func() {
			JustBeforeEach(func() {
				err = tracker.EnsureAdmin(ctx, "admin", "adminpass")
			})

			When("the account does not exist yet", func() {
				BeforeEach(func() {
					fakeRepo.CreateUserReturns(repository.User{ID: 1, Username: "admin", IsAdmin: true}, nil)
				})

				It("should seed an admin account", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
					_, argUser := fakeRepo.CreateUserArgsForCall(0)
					Expect(argUser.Username).To(Equal("admin"))
					Expect(argUser.IsAdmin).To(BeTrue())
					Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("adminpass"))).To(Succeed())
				})
			})

			When("the account already exists", func() {
				BeforeEach(func() {
					fakeRepo.CreateUserReturns(repository.User{}, repository.ErrDuplicate)
				})

				It("should be a no-op", func() {
					Expect(err).NotTo(HaveOccurred())
				})
			})
		})

		When("credentials are not configured", func() {
			It("should skip seeding", func() {
				Expect(tracker.EnsureAdmin(ctx, "", "")).To(Succeed())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})
	})
})
