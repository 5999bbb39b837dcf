// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./action.go -destination=../mocks/mock_action_repository.go -package=mocks ActionRepositoryIface
//go:generate mockgen -source=./quiz.go -destination=../mocks/mock_quiz_repository.go -package=mocks QuizRepositoryIface
//go:generate mockgen -source=./question.go -destination=../mocks/mock_question_repository.go -package=mocks QuestionRepositoryIface
//go:generate mockgen -source=./result.go -destination=../mocks/mock_result_repository.go -package=mocks ResultRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
