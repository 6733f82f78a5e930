// Package forms валидирует пользовательский ввод для создания
// и редактирования постов.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"yatube/internal/models"
	"yatube/internal/repository"
)

// Тексты подписей и подсказок формы. Метаданные для отображения,
// на валидацию не влияют.
var (
	Labels = map[string]string{
		"text":  "Текст поста",
		"group": "Группа",
	}
	HelpTexts = map[string]string{
		"group": "Группа, к которой будет относиться пост",
	}
)

// FieldErrors - ошибки валидации по именам полей формы.
type FieldErrors map[string]string

func (e FieldErrors) Has() bool {
	return len(e) > 0
}

// PostForm - форма поста: текст обязателен, группа опциональна
// и задается слагом существующей группы.
type PostForm struct {
	Text  string `validate:"required"`
	Group string

	// Instance - редактируемый пост в режиме edit, nil при создании.
	Instance *models.Post

	validate *validator.Validate
}

func NewPostForm(values url.Values) *PostForm {
	return &PostForm{
		Text:     values.Get("text"),
		Group:    values.Get("group"),
		validate: validator.New(),
	}
}

// BindInstance переводит форму в режим редактирования: поля
// заполняются текущими значениями поста.
func (f *PostForm) BindInstance(post *models.Post, groupSlug string) {
	f.Instance = post
	if f.Text == "" {
		f.Text = post.Text
	}
	if f.Group == "" {
		f.Group = groupSlug
	}
}

// Validate проверяет форму и собирает значение, готовое к сохранению.
// Автор не заполняется и ничего не персистится - это решает вызывающий.
// Ошибка возвращается только при сбое хранилища.
func (f *PostForm) Validate(ctx context.Context, groups repository.GroupRepository) (*models.Post, FieldErrors, error) {
	fieldErrors := FieldErrors{}

	f.Text = strings.TrimSpace(f.Text)
	f.Group = strings.TrimSpace(f.Group)

	if f.validate == nil {
		f.validate = validator.New()
	}

	if err := f.validate.Struct(f); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				if fieldError.Field() == "Text" {
					fieldErrors["text"] = "Обязательное поле."
				}
			}
		} else {
			return nil, nil, fmt.Errorf("ошибка валидации формы: %w", err)
		}
	}

	post := &models.Post{Text: f.Text}
	if f.Instance != nil {
		instance := *f.Instance
		instance.Text = f.Text
		instance.GroupID = nil
		post = &instance
	}

	// группа, если указана, должна существовать
	if f.Group != "" {
		group, err := groups.GetGroupBySlug(ctx, f.Group)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				fieldErrors["group"] = "Выберите существующую группу."
			} else {
				return nil, nil, err
			}
		} else {
			post.GroupID = &group.GroupID
		}
	}

	if fieldErrors.Has() {
		return nil, fieldErrors, nil
	}

	return post, nil, nil
}

// Context собирает контекст формы для рендеринга шаблоном.
func (f *PostForm) Context(fieldErrors FieldErrors) map[string]interface{} {
	return map[string]interface{}{
		"labels":     Labels,
		"help_texts": HelpTexts,
		"values": map[string]string{
			"text":  f.Text,
			"group": f.Group,
		},
		"errors": fieldErrors,
	}
}
