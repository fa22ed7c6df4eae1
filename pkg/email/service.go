package email

var GlobalEmailService *EmailService

func InitEmailService(apiKey, from, to string) error {
	service, err := NewEmailService(apiKey, from, to)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
