package templates

import "fmt"

// RenderApplicationDecisionEmail generates the HTML for the email a volunteer
// receives once an admin reviews their application
func RenderApplicationDecisionEmail(name, opportunityTitle string, approved bool, notes string) string {
	heading := "Your application was successful!"
	body := fmt.Sprintf("Great news! You have been accepted for <strong>%s</strong>. The organization will be in touch with next steps. You can log your volunteering hours from your dashboard as soon as you start.", opportunityTitle)
	if !approved {
		heading = "An update on your application"
		body = fmt.Sprintf("Unfortunately your application for <strong>%s</strong> was not successful this time. Don't be discouraged, new opportunities are posted every week and your skills are needed.", opportunityTitle)
	}

	notesBlock := ""
	if notes != "" {
		notesBlock = fmt.Sprintf(`
      <div class="notes-box">
        <h3>Note from the review team</h3>
        <p>%s</p>
      </div>`, notes)
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Application Update - VolunteerHub</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f7f6; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #34d399 0%%, #059669 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #374151; }
    .content h2 { color: #111827; margin-top: 0; }
    .notes-box { background: rgba(5, 150, 105, 0.08); border: 1px solid rgba(5, 150, 105, 0.3); border-radius: 12px; padding: 20px; margin: 20px 0; }
    .notes-box h3 { color: #059669; margin-top: 0; font-size: 16px; }
    .footer { padding: 30px; text-align: center; color: #9ca3af; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>VolunteerHub</h1>
    </div>
    <div class="content">
      <h2>%s</h2>
      <p>Hi %s,</p>
      <p>%s</p>%s
      <p>Thank you for volunteering with us.</p>
    </div>
    <div class="footer">
      <p>You are receiving this email because you applied for a volunteering opportunity on VolunteerHub.</p>
    </div>
  </div>
</body>
</html>`, heading, name, body, notesBlock)
}

// RenderHoursReminderEmail generates the HTML for the weekly nudge sent to
// volunteers with an active placement and no recent hour updates
func RenderHoursReminderEmail(name, opportunityTitle string) string {
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Log Your Hours - VolunteerHub</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f7f6; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #34d399 0%%, #059669 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #374151; }
    .content h2 { color: #111827; margin-top: 0; }
    .footer { padding: 30px; text-align: center; color: #9ca3af; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>VolunteerHub</h1>
    </div>
    <div class="content">
      <h2>Don't forget to log your hours</h2>
      <p>Hi %s,</p>
      <p>It has been a while since you last updated your hours for <strong>%s</strong>. Keeping your hours up to date helps organizations report their impact and keeps your volunteer stats accurate.</p>
      <p>Log in to your dashboard and update your record, it only takes a minute.</p>
    </div>
    <div class="footer">
      <p>You are receiving this email because you have an active volunteering placement on VolunteerHub.</p>
    </div>
  </div>
</body>
</html>`, name, opportunityTitle)
}
