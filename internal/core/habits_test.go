package core_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"habitd/internal/core"
	"habitd/internal/core/fake"
	"habitd/internal/repository"
)

var _ = Describe("HabitTracker habits", func() {
	var (
		fakeRepo *fake.Repository
		fakeJWT  *fake.JWTIssuer
		ctx      context.Context

		tracker *core.HabitTracker

		caller  core.UserRecord
		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		ctx = context.Background()

		tracker = core.NewHabitTracker(zap.NewNop().Sugar(), fakeRepo, fakeJWT, 30*time.Minute, 7*24*time.Hour)

		caller = core.UserRecord{ID: 7, Username: "alice"}
		fakeErr = errors.New("fake error")
	})

	Describe("CreateHabit", func() {
		var (
			msg   core.HabitMessage
			habit core.HabitRecord
			err   error
		)

		BeforeEach(func() {
			msg = core.HabitMessage{
				Name:      "morning run",
				Frequency: "daily",
				Target:    3,
			}

			fakeRepo.CreateHabitStub = func(_ context.Context, h repository.Habit) (repository.Habit, error) {
				h.ID = 11
				h.CreatedAt = time.Now()
				return h, nil
			}
		})

		JustBeforeEach(func() {
			habit, err = tracker.CreateHabit(ctx, caller, msg)
		})

		It("should create the habit for the caller", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(habit.ID).To(Equal(uint(11)))
			Expect(habit.UserID).To(Equal(uint(7)))
			Expect(habit.Target).To(Equal(3))

			Expect(fakeRepo.CreateHabitCallCount()).To(Equal(1))
			_, argHabit := fakeRepo.CreateHabitArgsForCall(0)
			Expect(argHabit.UserID).To(Equal(uint(7)))
			Expect(argHabit.Name).To(Equal("morning run"))
		})

		When("no target is given", func() {
			BeforeEach(func() {
				msg.Target = 0
			})

			It("should default the target to one completion", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argHabit := fakeRepo.CreateHabitArgsForCall(0)
				Expect(argHabit.Target).To(Equal(1))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateHabitStub = nil
				fakeRepo.CreateHabitReturns(repository.Habit{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetHabit", func() {
		When("the habit belongs to the caller", func() {
			BeforeEach(func() {
				fakeRepo.GetHabitReturns(repository.Habit{ID: 11, UserID: 7, Name: "morning run"}, nil)
			})

			It("should return the record scoped by owner", func() {
				habit, err := tracker.GetHabit(ctx, caller, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(habit.Name).To(Equal("morning run"))

				_, argHabitID, argUserID := fakeRepo.GetHabitArgsForCall(0)
				Expect(argHabitID).To(Equal(uint(11)))
				Expect(argUserID).To(Equal(uint(7)))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.GetHabitReturns(repository.Habit{}, repository.ErrNotFound)
			})

			It("should report it as missing", func() {
				_, err := tracker.GetHabit(ctx, caller, 11)
				Expect(err).To(MatchError(core.ErrNotFound))
			})
		})
	})

	Describe("ListHabits", func() {
		BeforeEach(func() {
			fakeRepo.ListHabitsReturns([]repository.Habit{
				{ID: 11, UserID: 7},
				{ID: 12, UserID: 7},
			}, nil)
		})

		It("should return the caller's habits", func() {
			habits, err := tracker.ListHabits(ctx, caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(habits).To(HaveLen(2))

			_, argUserID := fakeRepo.ListHabitsArgsForCall(0)
			Expect(argUserID).To(Equal(uint(7)))
		})
	})

	Describe("UpdateHabit", func() {
		var (
			msg core.HabitUpdate
			err error
		)

		BeforeEach(func() {
			name := "evening run"
			archived := true
			msg = core.HabitUpdate{Name: &name, Archived: &archived}
		})

		JustBeforeEach(func() {
			_, err = tracker.UpdateHabit(ctx, caller, 11, msg)
		})

		When("the habit belongs to the caller", func() {
			BeforeEach(func() {
				fakeRepo.UpdateHabitReturns(repository.Habit{ID: 11, UserID: 7, Name: "evening run"}, nil)
			})

			It("should pass only the changed columns", func() {
				Expect(err).NotTo(HaveOccurred())

				_, argHabitID, argUserID, fields := fakeRepo.UpdateHabitArgsForCall(0)
				Expect(argHabitID).To(Equal(uint(11)))
				Expect(argUserID).To(Equal(uint(7)))
				Expect(fields).To(HaveKeyWithValue("name", "evening run"))
				Expect(fields).To(HaveKeyWithValue("archived", true))
				Expect(fields).To(HaveKey("updated_at"))
				Expect(fields).NotTo(HaveKey("frequency"))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.UpdateHabitReturns(repository.Habit{}, repository.ErrNotFound)
			})

			It("should report it as missing", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
			})
		})
	})

	Describe("DeleteHabit", func() {
		When("the habit belongs to the caller", func() {
			It("should delete it", func() {
				Expect(tracker.DeleteHabit(ctx, caller, 11)).To(Succeed())

				_, argHabitID, argUserID := fakeRepo.DeleteHabitArgsForCall(0)
				Expect(argHabitID).To(Equal(uint(11)))
				Expect(argUserID).To(Equal(uint(7)))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.DeleteHabitReturns(repository.ErrNotFound)
			})

			It("should report it as missing", func() {
				Expect(tracker.DeleteHabit(ctx, caller, 11)).To(MatchError(core.ErrNotFound))
			})
		})
	})

	Describe("SortHabits", func() {
		It("should reorder the caller's habits", func() {
			Expect(tracker.SortHabits(ctx, caller, []uint{12, 11})).To(Succeed())

			_, argUserID, argIDs := fakeRepo.SortHabitsArgsForCall(0)
			Expect(argUserID).To(Equal(uint(7)))
			Expect(argIDs).To(Equal([]uint{12, 11}))
		})

		When("an id resolves to someone else's habit", func() {
			BeforeEach(func() {
				fakeRepo.SortHabitsReturns(repository.ErrNotFound)
			})

			It("should report it as missing", func() {
				Expect(tracker.SortHabits(ctx, caller, []uint{12, 99})).To(MatchError(core.ErrNotFound))
			})
		})
	})

	Describe("ListHabitTrackers", func() {
		When("the habit belongs to the caller", func() {
			BeforeEach(func() {
				fakeRepo.ListHabitTrackersReturns([]repository.Tracker{
					{ID: 22, HabitID: 11, Dated: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
					{ID: 21, HabitID: 11, Dated: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
				}, nil)
			})

			It("should return the habit's entries with formatted dates", func() {
				trackers, err := tracker.ListHabitTrackers(ctx, caller, 11, 30)
				Expect(err).NotTo(HaveOccurred())
				Expect(trackers).To(HaveLen(2))
				Expect(trackers[0].Dated).To(Equal("2025-06-02"))

				_, argHabitID, argUserID, argLimit := fakeRepo.ListHabitTrackersArgsForCall(0)
				Expect(argHabitID).To(Equal(uint(11)))
				Expect(argUserID).To(Equal(uint(7)))
				Expect(argLimit).To(Equal(30))
			})
		})

		When("the habit belongs to someone else", func() {
			BeforeEach(func() {
				fakeRepo.ListHabitTrackersReturns(nil, repository.ErrNotFound)
			})

			It("should report it as missing", func() {
				_, err := tracker.ListHabitTrackers(ctx, caller, 11, 0)
				Expect(err).To(MatchError(core.ErrNotFound))
			})
		})
	})
})
