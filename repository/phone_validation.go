package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/juanFRANvelilla/backendTFG/model"
)

// PhoneValidationRepoRedis keeps verification codes in Redis so they
// expire on their own. Two keys per phone: the code and the attempts
// counter, both sharing the same TTL.
type PhoneValidationRepoRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPhoneValidationRepoRedis(client *redis.Client, ttl time.Duration) *PhoneValidationRepoRedis {
	return &PhoneValidationRepoRedis{client: client, ttl: ttl}
}

func codeKey(phone string) string {
	return "phone_validation:code:" + phone
}

func attemptsKey(phone string) string {
	return "phone_validation:attempts:" + phone
}

func (p *PhoneValidationRepoRedis) Start(validation *model.PhoneValidation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := p.client.Set(ctx, codeKey(validation.Phone), validation.Code, p.ttl).Err(); err != nil {
		return err
	}
	return p.client.Set(ctx, attemptsKey(validation.Phone), 0, p.ttl).Err()
}

// Find returns nil without error when no validation is in flight.
func (p *PhoneValidationRepoRedis) Find(phone string) (*model.PhoneValidation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	code, err := p.client.Get(ctx, codeKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	attempts := 0
	raw, err := p.client.Get(ctx, attemptsKey(phone)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	if err == nil {
		if attempts, err = strconv.Atoi(raw); err != nil {
			return nil, err
		}
	}

	return &model.PhoneValidation{Phone: phone, Code: code, Attempts: attempts}, nil
}

func (p *PhoneValidationRepoRedis) IncreaseAttempts(phone string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	return p.client.Incr(ctx, attemptsKey(phone)).Err()
}

func (p *PhoneValidationRepoRedis) Delete(phone string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	return p.client.Del(ctx, codeKey(phone), attemptsKey(phone)).Err()
}
