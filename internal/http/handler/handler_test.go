package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"habitd/internal/core"
	"habitd/internal/http/handler"
	"habitd/internal/http/handler/fake"
)

var _ = Describe("HabitHandler", func() {
	var (
		hh            *handler.HabitHandler
		fakeService   *fake.HabitService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request

		caller  core.UserRecord
		fakeErr error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.HabitService)
		fakeValidator = new(fake.RequestValidator)

		caller = core.UserRecord{ID: 7, Username: "alice"}
		fakeService.AuthorizeReturns(caller, nil)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, jsonPayload any) error {
			return json.NewDecoder(r.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		hh = handler.NewHabitHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/auth/register", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			hh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{ID: 7, Username: "alice"}, nil)
			})

			It("should return 201 with the new user", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var response map[string]core.UserRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["user"].Username).To(Equal("alice"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, argMsg := fakeService.RegisterArgsForCall(0)
				Expect(argMsg.Username).To(Equal("alice"))
				Expect(argMsg.Password).To(Equal("testpass"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, core.ErrUserExists)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring("username already taken"))
			})
		})

		When("registration fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, fakeErr)
			})

			It("should return an opaque 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/auth/login", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			hh.HandleLogin(w, req)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.TokenPair{
					AccessToken:  "signed.access",
					RefreshToken: "signed.refresh",
					TokenType:    "bearer",
				}, nil)
			})

			It("should return the token pair", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var tokens core.TokenPair
				Expect(json.NewDecoder(w.Body).Decode(&tokens)).To(Succeed())
				Expect(tokens.AccessToken).To(Equal("signed.access"))
				Expect(tokens.TokenType).To(Equal("bearer"))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.TokenPair{}, core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleRefresh", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"refresh_token":"signed.refresh"}`)
			req = httptest.NewRequest("POST", "/auth/refresh", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			hh.HandleRefresh(w, req)
		})

		When("the refresh token is valid", func() {
			BeforeEach(func() {
				fakeService.RefreshReturns(core.TokenPair{AccessToken: "new.access"}, nil)
			})

			It("should return a fresh pair", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.RefreshCallCount()).To(Equal(1))
				_, argToken := fakeService.RefreshArgsForCall(0)
				Expect(argToken).To(Equal("signed.refresh"))
			})
		})

		When("the refresh token is invalid", func() {
			BeforeEach(func() {
				fakeService.RefreshReturns(core.TokenPair{}, core.ErrInvalidToken)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleListHabits", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/habits", nil)
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleListHabits(w, req)
		})

		When("the caller is authorized", func() {
			BeforeEach(func() {
				fakeService.ListHabitsReturns([]core.HabitRecord{
					{ID: 11, UserID: 7, Name: "morning run"},
				}, nil)
			})

			It("should return the caller's habits", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string][]core.HabitRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["habits"]).To(HaveLen(1))

				Expect(fakeService.AuthorizeCallCount()).To(Equal(1))
				_, argToken := fakeService.AuthorizeArgsForCall(0)
				Expect(argToken).To(Equal("valid.token"))
				_, argCaller := fakeService.ListHabitsArgsForCall(0)
				Expect(argCaller).To(Equal(caller))
			})
		})

		When("the Authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.AuthorizeCallCount()).To(Equal(0))
				Expect(fakeService.ListHabitsCallCount()).To(Equal(0))
			})
		})

		When("the token does not resolve", func() {
			BeforeEach(func() {
				fakeService.AuthorizeReturns(core.UserRecord{}, core.ErrInvalidToken)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListHabitsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleCreateHabit", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"morning run","frequency":"daily","target":3}`)
			req = httptest.NewRequest("POST", "/habits", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleCreateHabit(w, req)
		})

		When("the payload is valid", func() {
			BeforeEach(func() {
				fakeService.CreateHabitReturns(core.HabitRecord{ID: 11, UserID: 7, Name: "morning run"}, nil)
			})

			It("should return 201 with the habit", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var habit core.HabitRecord
				Expect(json.NewDecoder(w.Body).Decode(&habit)).To(Succeed())
				Expect(habit.ID).To(Equal(uint(11)))

				_, _, argMsg := fakeService.CreateHabitArgsForCall(0)
				Expect(argMsg.Name).To(Equal("morning run"))
				Expect(argMsg.Target).To(Equal(3))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateHabitCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetHabit", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/habits/11", nil)
			req.SetPathValue("id", "11")
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleGetHabit(w, req)
		})

		When("the habit belongs to the caller", func() {
			BeforeEach(func() {
				fakeService.GetHabitReturns(core.HabitRecord{ID: 11, UserID: 7}, nil)
			})

			It("should return the habit", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, argID := fakeService.GetHabitArgsForCall(0)
				Expect(argID).To(Equal(uint(11)))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeService.GetHabitReturns(core.HabitRecord{}, core.ErrNotFound)
			})

			It("should return 404, not 403", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a positive integer", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "abc")
			})

			It("should return 404 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.GetHabitCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleSortHabits", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"habit_ids":[12,11]}`)
			req = httptest.NewRequest("PUT", "/habits/sort", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleSortHabits(w, req)
		})

		When("every id belongs to the caller", func() {
			BeforeEach(func() {
				fakeService.SortHabitsReturns(nil)
			})

			It("should confirm the new order", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Habits sorted successfully"))

				_, argCaller, argIDs := fakeService.SortHabitsArgsForCall(0)
				Expect(argCaller).To(Equal(caller))
				Expect(argIDs).To(Equal([]uint{12, 11}))
			})
		})

		When("an id resolves to someone else's habit", func() {
			BeforeEach(func() {
				fakeService.SortHabitsReturns(core.ErrNotFound)
			})

			It("should return 404, not 403", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SortHabitsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleListHabitTrackers", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/habits/11/trackers?limit=30", nil)
			req.SetPathValue("id", "11")
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleListHabitTrackers(w, req)
		})

		When("the habit belongs to the caller", func() {
			BeforeEach(func() {
				fakeService.ListHabitTrackersReturns([]core.TrackerRecord{
					{ID: 22, HabitID: 11, Dated: "2025-06-02"},
					{ID: 21, HabitID: 11, Dated: "2025-06-01"},
				}, nil)
			})

			It("should return the habit's trackers", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string][]core.TrackerRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["trackers"]).To(HaveLen(2))

				_, argCaller, argHabitID, argLimit := fakeService.ListHabitTrackersArgsForCall(0)
				Expect(argCaller).To(Equal(caller))
				Expect(argHabitID).To(Equal(uint(11)))
				Expect(argLimit).To(Equal(30))
			})
		})

		When("no limit is given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/habits/11/trackers", nil)
				req.SetPathValue("id", "11")
				req.Header.Set("Authorization", "Bearer valid.token")
			})

			It("should ask for all entries", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, _, argLimit := fakeService.ListHabitTrackersArgsForCall(0)
				Expect(argLimit).To(Equal(0))
			})
		})

		When("the limit is out of range", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/habits/11/trackers?limit=5000", nil)
				req.SetPathValue("id", "11")
				req.Header.Set("Authorization", "Bearer valid.token")
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ListHabitTrackersCallCount()).To(Equal(0))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeService.ListHabitTrackersReturns(nil, core.ErrNotFound)
			})

			It("should return 404, not 403", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/users/7", nil)
			req.SetPathValue("id", "7")
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleDeleteUser(w, req)
		})

		When("the caller is an admin", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(nil)
			})

			It("should confirm the deletion", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("User deleted successfully"))

				_, argCaller, argID := fakeService.DeleteUserArgsForCall(0)
				Expect(argCaller).To(Equal(caller))
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("the caller is not an admin", func() {
			BeforeEach(func() {
				fakeService.DeleteUserReturns(core.ErrNotAllowed)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleCreateTracker", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"habit_id":11,"dated":"2025-06-01"}`)
			req = httptest.NewRequest("POST", "/trackers", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleCreateTracker(w, req)
		})

		When("the payload is valid", func() {
			BeforeEach(func() {
				fakeService.CreateTrackerReturns(core.TrackerRecord{ID: 21, HabitID: 11, Dated: "2025-06-01"}, nil)
			})

			It("should return 201 with the tracker", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var tracker core.TrackerRecord
				Expect(json.NewDecoder(w.Body).Decode(&tracker)).To(Succeed())
				Expect(tracker.Dated).To(Equal("2025-06-01"))

				_, _, argMsg := fakeService.CreateTrackerArgsForCall(0)
				Expect(argMsg.HabitID).To(Equal(uint(11)))
				Expect(argMsg.Dated.Format(core.DateFormat)).To(Equal("2025-06-01"))
			})
		})

		When("a tracker already exists for that date", func() {
			BeforeEach(func() {
				fakeService.CreateTrackerReturns(core.TrackerRecord{}, core.ErrTrackerExists)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeService.CreateTrackerReturns(core.TrackerRecord{}, core.ErrNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleListUsers", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/users", nil)
			req.Header.Set("Authorization", "Bearer valid.token")
		})

		JustBeforeEach(func() {
			hh.HandleListUsers(w, req)
		})

		When("the caller is authorized", func() {
			BeforeEach(func() {
				fakeService.ListUsersReturns([]core.UserRecord{caller}, nil)
			})

			It("should return the visible users", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string][]core.UserRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["users"]).To(HaveLen(1))
				Expect(response["users"][0].Username).To(Equal("alice"))
			})
		})
	})
})
